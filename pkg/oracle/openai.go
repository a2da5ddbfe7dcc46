package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultCompletionURL = "https://api.openai.com/v1/chat/completions"

// TextOracle is a best-effort text oracle: prompt in, text out. There is no
// contract on the shape of the returned content.
type TextOracle interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type OpenAIConfig struct {
	APIKey string
	Model  string

	// CompletionURL is overridable for tests.
	CompletionURL string
}

type openAIOracle struct {
	config OpenAIConfig
	client *http.Client
}

func NewOpenAIOracle(config OpenAIConfig) TextOracle {
	if config.CompletionURL == "" {
		config.CompletionURL = defaultCompletionURL
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	return &openAIOracle{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openAIOracle) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if o.config.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: o.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.config.CompletionURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.config.APIKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai API error: %s - %s", resp.Status, string(respBody))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
