package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// ErrMissingAPIKey is returned when the client has no API key configured.
var ErrMissingAPIKey = errors.New("openai API key is not configured")

// Config holds the OpenAI connection details. APIKey is required for calls
// to succeed; Model and BaseURL fall back to defaults when empty.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client is a minimal OpenAI chat-completions client for macro inference.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new OpenAI client. The missing-credential check is
// deferred to call time so the client can be constructed unconditionally.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// MealMacros is the structured shape the model is asked to produce.
type MealMacros struct {
	Title         string  `json:"title"`
	Carbs         float64 `json:"carbs"`
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	TotalCalories float64 `json:"total_calories"`
}

const systemPrompt = `You are a nutrition expert assistant. When given a description of a meal or food,
analyze it and provide accurate estimates of its macronutrient content.

Respond with a JSON object containing exactly these keys:
- title: a concise, clear name for the meal (e.g., "Grilled Chicken Salad" not just "chicken")
- carbs: carbohydrates in grams
- proteins: protein content in grams
- fats: fat content in grams
- total_calories: total caloric content

Be as accurate as possible with standard portion sizes. If the description is vague,
use typical serving sizes. All values should be positive numbers.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// InferMealMacros asks the model for a macro estimate of the described meal.
// It performs exactly one call: any failure surfaces immediately, no retry.
func (c *Client) InferMealMacros(description string) (*MealMacros, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Analyze this meal and provide macronutrient information: %s", description)},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAI response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAI API error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI response contained no choices")
	}

	var macros MealMacros
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &macros); err != nil {
		return nil, fmt.Errorf("failed to parse meal macros from model output: %w", err)
	}
	return &macros, nil
}
