//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/Minoovn/backendForHobbyPlanner/internal/models"
	"github.com/Minoovn/backendForHobbyPlanner/internal/repository"
	"github.com/Minoovn/backendForHobbyPlanner/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "hobby_sessions_test"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS attendees")
	testDB.Exec("DROP TABLE IF EXISTS sessions")

	if err := testDB.AutoMigrate(&models.Session{}, &models.Attendee{}); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS attendees")
	testDB.Exec("DROP TABLE IF EXISTS sessions")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM attendees")
	testDB.Exec("DELETE FROM sessions")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newServices() (service.SessionService, service.AttendeeService) {
	sessionRepo := repository.NewSessionRepository(testDB)
	attendeeRepo := repository.NewAttendeeRepository(testDB)
	notifier := service.NewNotifier(nil, "http://localhost:8080", time.Second)

	sessionSvc := service.NewSessionService(sessionRepo, attendeeRepo, nil, notifier)
	attendeeSvc := service.NewAttendeeService(attendeeRepo, sessionRepo, nil, notifier, false)
	return sessionSvc, attendeeSvc
}
