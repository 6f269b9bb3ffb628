package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pet-namer/internal/ports/naming"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// Config del cliente Gemini. APIKey normalmente viene de GEMINI_API_KEY.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // opcional; para tests o proxies
}

// Client implementa naming.Generator usando la API de Gemini.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient crea el cliente. Sin API key no falla: cada llamada devolverá
// naming.ErrNotConfigured, igual que si faltara la variable de entorno.
func NewClient(ctx context.Context, cfg Config, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		model:  model,
		logger: logger.Named("gemini"),
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		c.logger.Warn("GEMINI_API_KEY not set; name generation will fail")
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: strings.TrimSpace(cfg.BaseURL),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.client = gc
	return c, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.client != nil
}

func (c *Client) GenerateName(ctx context.Context, t naming.Traits) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not set", naming.ErrNotConfigured)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(naming.Prompt(t)), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", naming.ErrUpstream, err)
	}

	name, err := naming.FirstLine(resp.Text())
	if err != nil {
		return "", err
	}

	c.logger.Debug("name generated", zap.String("model", c.model), zap.String("name", name))
	return name, nil
}
