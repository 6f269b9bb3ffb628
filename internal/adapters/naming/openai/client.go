package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pet-namer/internal/ports/naming"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const DefaultModel = "gpt-4o-mini"

// Config de un endpoint OpenAI-compatible.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // vacío => api.openai.com
}

type Client struct {
	client *goopenai.Client
	model  string
	logger *zap.Logger
}

func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		model:  model,
		logger: logger.Named("openai"),
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" && strings.TrimSpace(cfg.BaseURL) == "" {
		// Sin key ni endpoint propio (p.ej. vLLM local) no hay a quién llamar.
		c.logger.Warn("OPENAI_API_KEY not set; name generation will fail")
		return c
	}

	clientConfig := goopenai.DefaultConfig(apiKey)
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientConfig.BaseURL = strings.TrimSuffix(base, "/")
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}
	c.client = goopenai.NewClientWithConfig(clientConfig)
	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.client != nil
}

func (c *Client) GenerateName(ctx context.Context, t naming.Traits) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("%w: OPENAI_API_KEY is not set", naming.ErrNotConfigured)
	}

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: naming.Prompt(t)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", naming.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", naming.ErrEmptyResponse
	}

	name, err := naming.FirstLine(resp.Choices[0].Message.Content)
	if err != nil {
		return "", err
	}

	c.logger.Debug("name generated",
		zap.String("model", c.model),
		zap.String("name", name),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return name, nil
}
