package services

import (
	"errors"

	"caltrack/internal/models"
	"caltrack/pkg/openai"

	"github.com/go-playground/validator/v10"
)

// AIService wraps the OpenAI client behind the service error taxonomy.
// Inference results are advisory: they are returned as-is, never persisted,
// and not re-validated against the create-meal rules.
type AIService struct {
	client   *openai.Client
	validate *validator.Validate
}

// NewAIService creates a new AIService.
func NewAIService(client *openai.Client) *AIService {
	return &AIService{
		client:   client,
		validate: validator.New(),
	}
}

// InferMealMacros asks the AI collaborator for a macro estimate of the
// described meal. Request validation happens before any network call; a
// missing credential is a ConfigurationError, everything else that goes
// wrong upstream is an UpstreamError. Exactly one attempt, no retries.
func (s *AIService) InferMealMacros(req models.AIMealRequest) (*models.AIMealResponse, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, newValidationError(err)
	}

	if s.client == nil {
		return nil, &ConfigurationError{Message: "AI inference is not configured"}
	}

	macros, err := s.client.InferMealMacros(req.Description)
	if err != nil {
		if errors.Is(err, openai.ErrMissingAPIKey) {
			return nil, &ConfigurationError{Message: "OPENAI_API_KEY is not set"}
		}
		return nil, &UpstreamError{Op: "infer meal macros", Err: err}
	}

	return &models.AIMealResponse{
		Title:         macros.Title,
		Carbs:         macros.Carbs,
		Proteins:      macros.Proteins,
		Fats:          macros.Fats,
		TotalCalories: macros.TotalCalories,
	}, nil
}
