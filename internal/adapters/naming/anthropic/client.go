package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pet-namer/internal/ports/naming"

	goanthropic "github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"
)

const (
	DefaultModel = "claude-3-5-haiku-latest"

	// Un nombre de una palabra; sobra margen.
	maxTokens = 32
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	client *goanthropic.Client
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
		logger: logger.Named("anthropic"),
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		c.logger.Warn("ANTHROPIC_API_KEY not set; name generation will fail")
		return c
	}

	opts := []goanthropic.ClientOption{}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, goanthropic.WithBaseURL(strings.TrimSuffix(base, "/")))
	}
	if httpClient != nil {
		opts = append(opts, goanthropic.WithHTTPClient(httpClient))
	}
	c.client = goanthropic.NewClient(apiKey, opts...)
	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.client != nil
}

func (c *Client) GenerateName(ctx context.Context, t naming.Traits) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", naming.ErrNotConfigured)
	}

	prompt := naming.Prompt(t)
	resp, err := c.client.CreateMessages(ctx, goanthropic.MessagesRequest{
		Model:     goanthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []goanthropic.Message{
			{Role: goanthropic.RoleUser, Content: []goanthropic.MessageContent{
				{Type: "text", Text: &prompt},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", naming.ErrUpstream, err)
	}

	name, err := naming.FirstLine(textOf(resp))
	if err != nil {
		return "", err
	}

	c.logger.Debug("name generated", zap.String("model", c.model), zap.String("name", name))
	return name, nil
}

func textOf(resp goanthropic.MessagesResponse) string {
	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != nil {
			return *block.Text
		}
	}
	return ""
}
