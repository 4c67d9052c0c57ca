package summary

import (
	"context"
	"errors"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is empty")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, *gwerr.Error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("[summary] completion failed: %v", err)
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", gwerr.Internal("summary generation failed, please try again")
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError prefers the numeric status the SDK captured;
// substring matching on the message is only the fallback.
func classifyOpenAIError(err error) *gwerr.Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return gwerr.FromProviderStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}
	if gerr := gwerr.FromTransport(err); gerr.Kind != gwerr.KindInternal {
		return gerr
	}
	return gwerr.FromProviderMessage(err.Error())
}
