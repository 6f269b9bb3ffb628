package naming

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotConfigured = errors.New("name generator not configured")
	ErrUpstream      = errors.New("name generator upstream error")
	ErrEmptyResponse = errors.New("name generator returned empty text")
)

// Traits son los rasgos con los que se pide el nombre.
type Traits struct {
	Species     string
	Color       string
	Personality string
}

// Generator pide un nombre a un servicio externo de texto generativo.
type Generator interface {
	GenerateName(ctx context.Context, t Traits) (string, error)
}

// GeneratorFunc adapta una función a Generator (útil en tests).
type GeneratorFunc func(ctx context.Context, t Traits) (string, error)

func (f GeneratorFunc) GenerateName(ctx context.Context, t Traits) (string, error) {
	return f(ctx, t)
}

// Prompt arma el pedido en lenguaje natural para un nombre de una sola palabra.
func Prompt(t Traits) string {
	return fmt.Sprintf(
		"Suggest a creative, unique, and cute name for a %s %s with a %s personality. "+
			"Only return a single-word name, nothing else.",
		t.Color, t.Species, t.Personality,
	)
}

// FirstLine devuelve la primera línea del texto, sin espacios alrededor.
// Texto vacío => ErrEmptyResponse.
func FirstLine(text string) (string, error) {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
