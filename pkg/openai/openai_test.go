package openai_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"caltrack/pkg/openai"

	"github.com/stretchr/testify/assert"
)

func TestClient_InferMealMacros(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{
				"message": {
					"content": "{\"title\":\"Spaghetti Bolognese\",\"carbs\":65.0,\"proteins\":28.0,\"fats\":18.0,\"total_calories\":540.0}"
				}
			}]
		}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL})

	macros, err := client.InferMealMacros("spaghetti with meat sauce")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.Equal(t, "Spaghetti Bolognese", macros.Title)
	assert.Equal(t, 65.0, macros.Carbs)
	assert.Equal(t, 28.0, macros.Proteins)
	assert.Equal(t, 18.0, macros.Fats)
	assert.Equal(t, 540.0, macros.TotalCalories)
}

func TestClient_InferMealMacros_MissingAPIKey(t *testing.T) {
	client := openai.NewClient(openai.Config{})

	_, err := client.InferMealMacros("a sandwich")

	assert.ErrorIs(t, err, openai.ErrMissingAPIKey)
}

func TestClient_InferMealMacros_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "bad-key", BaseURL: server.URL})

	_, err := client.InferMealMacros("a sandwich")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_InferMealMacros_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.InferMealMacros("a sandwich")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_InferMealMacros_MalformedContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "not json at all"}}]}`))
	}))
	defer server.Close()

	client := openai.NewClient(openai.Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.InferMealMacros("a sandwich")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse meal macros")
}
