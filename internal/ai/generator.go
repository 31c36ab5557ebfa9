// Package ai produces document summaries and NFT metadata. Summaries come
// from an OpenAI-compatible chat completions backend when one is configured
// and from deterministic placeholder content otherwise.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/utils"
)

//go:generate mockgen -source=generator.go -destination=../mock/ai_generator_mock.go -package=mock

// ErrEmptyResponse is returned when the backend answers without text.
var ErrEmptyResponse = errors.New("empty response from text generator")

// TextGenerator generates text from a system prompt and a user prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAICompatGenerator calls an OpenAI-compatible /chat/completions endpoint.
type OpenAICompatGenerator struct {
	client      *utils.HTTPClient
	model       string
	maxTokens   int
	temperature float64
}

// NewOpenAICompatGenerator builds a TextGenerator. cfg.BaseURL should include
// the /v1 prefix.
func NewOpenAICompatGenerator(cfg config.AI) *OpenAICompatGenerator {
	client := utils.NewHTTPClient(strings.TrimSpace(cfg.BaseURL), 0)
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		client.SetAuthToken(key)
	}

	return &OpenAICompatGenerator{
		client:      client,
		model:       strings.TrimSpace(cfg.Model),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// GenerateText implements TextGenerator.
func (g *OpenAICompatGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.model == "" {
		return "", errors.New("text generation model required")
	}

	messages := make([]chatMessage, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	var (
		chatResp chatResponse
		errResp  errorResponse
	)
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{
			Model:       g.model,
			Messages:    messages,
			MaxTokens:   g.maxTokens,
			Temperature: g.temperature,
		}).
		SetResult(&chatResp).
		SetError(&errResp).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completions request: %w", err)
	}

	if resp.IsError() {
		if errResp.Error.Message != "" {
			return "", fmt.Errorf("chat completions api error: %s", errResp.Error.Message)
		}
		return "", fmt.Errorf("chat completions api error: %s", resp.Status())
	}

	if len(chatResp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
