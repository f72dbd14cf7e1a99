package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Minoovn/backendForHobbyPlanner/pkg/metric"
)

// DefaultSuggestionPrompt is used when the client sends no prompt.
const DefaultSuggestionPrompt = "Suggest a fun hobby session idea with a short catchy title and a two-sentence description."

// Completer is the upstream text-generation capability; pkg/llm implements it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type SuggestionService interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

type suggestionService struct {
	completer Completer
}

func NewSuggestionService(completer Completer) SuggestionService {
	return &suggestionService{completer: completer}
}

func (s *suggestionService) Suggest(ctx context.Context, prompt string) (string, error) {
	if s.completer == nil {
		return "", ErrSuggestionUnavailable
	}
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultSuggestionPrompt
	}

	suggestion, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSuggestionUnavailable, err)
	}
	metric.SuggestionsServed.Inc()
	return suggestion, nil
}
