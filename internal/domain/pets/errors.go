package pets

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidData    = errors.New("invalid data")

	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("not found")
)

// MissingFieldError indica un campo requerido ausente.
// Kind es ErrInvalidRequest (body) o ErrInvalidData (construcción de la entidad).
type MissingFieldError struct {
	Kind  error
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: missing %s", e.Kind, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return e.Kind }

// LookupError es el resultado fallido de Resolve. ID es el valor crudo del path.
type LookupError struct {
	Kind error // ErrInvalidID o ErrNotFound
	ID   string
}

func (e *LookupError) Error() string {
	if errors.Is(e.Kind, ErrNotFound) {
		return fmt.Sprintf("Pet %s not found", e.ID)
	}
	return fmt.Sprintf("Pet %s invalid", e.ID)
}

func (e *LookupError) Unwrap() error { return e.Kind }

// GenerationError envuelve cualquier falla del generador de nombres.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }
