package main

import (
	"context"
	"fmt"

	"pet-namer/internal/adapters/naming/anthropic"
	"pet-namer/internal/adapters/naming/gemini"
	"pet-namer/internal/adapters/naming/openai"
	"pet-namer/internal/config"
	"pet-namer/internal/platform/httpclient"
	"pet-namer/internal/ports/naming"

	"go.uber.org/zap"
)

// newNameGenerator arma el proveedor elegido por NAMING_PROVIDER.
func newNameGenerator(ctx context.Context, cfg config.NamingConfig, lg *zap.Logger) (naming.Generator, error) {
	hc := httpclient.New(cfg.Timeout, lg)

	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		}, hc, lg)
	case config.ProviderOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		}, hc, lg), nil
	case config.ProviderAnthropic:
		return anthropic.NewClient(anthropic.Config{
			APIKey:  cfg.Anthropic.APIKey,
			Model:   cfg.Anthropic.Model,
			BaseURL: cfg.Anthropic.BaseURL,
		}, hc, lg), nil
	default:
		return nil, fmt.Errorf("unknown naming provider %q", cfg.Provider)
	}
}
