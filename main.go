package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Minoovn/backendForHobbyPlanner/config"
	"github.com/Minoovn/backendForHobbyPlanner/internal/handler"
	"github.com/Minoovn/backendForHobbyPlanner/internal/middleware"
	"github.com/Minoovn/backendForHobbyPlanner/internal/repository"
	"github.com/Minoovn/backendForHobbyPlanner/internal/service"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/database"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/llm"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/mailer"
	"github.com/Minoovn/backendForHobbyPlanner/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional broker: a nil publisher drops all events.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			slog.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
	} else {
		slog.Info("RABBITMQ_URL not set, event publishing disabled")
	}

	var sender mailer.Sender
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		slog.Info("SMTP_HOST not set, outbound mail disabled")
	}
	notifier := service.NewNotifier(sender, cfg.PublicBaseURL, cfg.MailTimeout)

	var completer service.Completer
	if cfg.GroqAPIKey != "" {
		completer = llm.NewClient(cfg.GroqAPIKey)
	} else {
		slog.Info("GROQ_API_KEY not set, session suggestions disabled")
	}

	sessionRepo := repository.NewSessionRepository(db)
	attendeeRepo := repository.NewAttendeeRepository(db)

	sessionSvc := service.NewSessionService(sessionRepo, attendeeRepo, publisher, notifier)
	attendeeSvc := service.NewAttendeeService(attendeeRepo, sessionRepo, publisher, notifier, cfg.RequireAttendeeEmail)
	suggestionSvc := service.NewSuggestionService(completer)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "hobby-planner"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewSessionHandler(sessionSvc).RegisterRoutes(e)
	handler.NewAttendeeHandler(attendeeSvc).RegisterRoutes(e)
	handler.NewSuggestionHandler(suggestionSvc).RegisterRoutes(e)

	go func() {
		slog.Info("hobby planner starting", "port", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}
