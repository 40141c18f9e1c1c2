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

// GoogleProvider calls the generative language API. It has no separate
// system-role slot, so the system prompt is prepended to the user prompt.
type GoogleProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGoogleProvider builds the google backend from provider config.
func NewGoogleProvider(cfg config.ProviderConfig) *GoogleProvider {
	return &GoogleProvider{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{},
	}
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) IsConfigured() bool { return p.apiKey != "" }

func (p *GoogleProvider) Call(ctx context.Context, prompt string, opts CallOptions) (string, error) {
	if !p.IsConfigured() {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("GOOGLE_API_KEY not set"))
	}

	fullPrompt := prompt
	if opts.SystemPrompt != "" {
		fullPrompt = opts.SystemPrompt + "\n\n" + prompt
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": fullPrompt}}},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     opts.Temperature,
			"maxOutputTokens": opts.MaxTokens,
		},
	}

	body, _ := json.Marshal(requestBody)
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", errors.NewLLMProviderError(p.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.NewLLMProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("decode error: %v", err))
	}

	if len(apiResponse.Candidates) == 0 || len(apiResponse.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("no content in response"))
	}
	text := apiResponse.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", errors.NewLLMProviderError(p.Name(), fmt.Errorf("no content in response"))
	}
	return text, nil
}
