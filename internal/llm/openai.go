package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/errors"
)

// OpenAIProvider calls the chat completions API.
type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIProvider builds the openai backend from provider config.
func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{
			// No client timeout, rely only on context
		},
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) IsConfigured() bool { return p.apiKey != "" }

func (p *OpenAIProvider) Call(ctx context.Context, prompt string, opts CallOptions) (string, error) {
	if !p.IsConfigured() {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("OPENAI_API_KEY not set"))
	}

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	var messages []message
	if opts.SystemPrompt != "" {
		messages = append(messages, message{Role: "system", Content: opts.SystemPrompt})
	}
	messages = append(messages, message{Role: "user", Content: prompt})

	requestBody := map[string]interface{}{
		"model":       p.model,
		"messages":    messages,
		"temperature": opts.Temperature,
		"max_tokens":  opts.MaxTokens,
	}

	body, _ := json.Marshal(requestBody)
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", errors.NewLLMProviderError(p.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.NewLLMProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("decode error: %v", err))
	}

	if len(apiResponse.Choices) == 0 || apiResponse.Choices[0].Message.Content == "" {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("no content in response"))
	}
	return apiResponse.Choices[0].Message.Content, nil
}
