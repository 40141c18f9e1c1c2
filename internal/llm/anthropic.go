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

// AnthropicProvider calls the messages API.
type AnthropicProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewAnthropicProvider builds the anthropic backend from provider config.
func NewAnthropicProvider(cfg config.ProviderConfig) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{},
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) IsConfigured() bool { return p.apiKey != "" }

func (p *AnthropicProvider) Call(ctx context.Context, prompt string, opts CallOptions) (string, error) {
	if !p.IsConfigured() {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("ANTHROPIC_API_KEY not set"))
	}

	requestBody := map[string]interface{}{
		"model":       p.model,
		"max_tokens":  opts.MaxTokens,
		"temperature": opts.Temperature,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	if opts.SystemPrompt != "" {
		requestBody["system"] = opts.SystemPrompt
	}

	body, _ := json.Marshal(requestBody)
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/v1/messages", bytes.NewBuffer(body))
	if err != nil {
		return "", errors.NewLLMProviderError(p.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.NewLLMProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResponse struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("decode error: %v", err))
	}

	for _, block := range apiResponse.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("no text content in response"))
}
