package services_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"caltrack/internal/models"
	"caltrack/internal/services"
	"caltrack/pkg/openai"

	"github.com/stretchr/testify/assert"
)

func TestAIService_InferMealMacros(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{
				"message": {
					"content": "{\"title\":\"Grilled Chicken Salad\",\"carbs\":12.5,\"proteins\":35.0,\"fats\":8.0,\"total_calories\":265.0}"
				}
			}]
		}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL})
	service := services.NewAIService(client)

	result, err := service.InferMealMacros(models.AIMealRequest{
		Description: "grilled chicken with mixed greens",
		Username:    "alice",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Grilled Chicken Salad", result.Title)
	assert.Equal(t, 12.5, result.Carbs)
	assert.Equal(t, 35.0, result.Proteins)
	assert.Equal(t, 8.0, result.Fats)
	assert.Equal(t, 265.0, result.TotalCalories)
}

func TestAIService_InferMealMacros_EmptyDescription(t *testing.T) {
	// Validation must fail before any network call; a client that would
	// panic on use proves no call was attempted.
	service := services.NewAIService(nil)

	_, err := service.InferMealMacros(models.AIMealRequest{
		Description: "   ",
		Username:    "alice",
	})

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Description")
}

func TestAIService_InferMealMacros_EmptyUsername(t *testing.T) {
	service := services.NewAIService(nil)

	_, err := service.InferMealMacros(models.AIMealRequest{
		Description: "a bowl of oatmeal",
		Username:    "",
	})

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Username")
}

func TestAIService_InferMealMacros_MissingAPIKey(t *testing.T) {
	client := openai.NewClient(openai.Config{})
	service := services.NewAIService(client)

	_, err := service.InferMealMacros(models.AIMealRequest{
		Description: "a bowl of oatmeal",
		Username:    "alice",
	})

	var configErr *services.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestAIService_InferMealMacros_NilClient(t *testing.T) {
	service := services.NewAIService(nil)

	_, err := service.InferMealMacros(models.AIMealRequest{
		Description: "a bowl of oatmeal",
		Username:    "alice",
	})

	var configErr *services.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
}

func TestAIService_InferMealMacros_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL})
	service := services.NewAIService(client)

	_, err := service.InferMealMacros(models.AIMealRequest{
		Description: "a bowl of oatmeal",
		Username:    "alice",
	})

	var upstreamErr *services.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestAIService_InferMealMacros_UnparseableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "sorry, I cannot help with that"}}]}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL})
	service := services.NewAIService(client)

	_, err := service.InferMealMacros(models.AIMealRequest{
		Description: "a bowl of oatmeal",
		Username:    "alice",
	})

	var upstreamErr *services.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}
