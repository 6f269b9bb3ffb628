package pets

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"pet-namer/internal/ports/naming"

	"go.uber.org/zap"
)

type Service struct {
	repo   Repository
	namer  naming.Generator
	logger *zap.Logger
}

func NewService(repo Repository, namer naming.Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		namer:  namer,
		logger: logger.Named("pets"),
	}
}

// CreateInput usa punteros para distinguir "no enviado" de "vacío".
type CreateInput struct {
	Animal      *string
	Personality *string
	Coloration  *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	// Mismo orden de validación que el body documentado.
	required := []struct {
		field string
		value *string
	}{
		{"animal", in.Animal},
		{"personality", in.Personality},
		{"coloration", in.Coloration},
	}
	for _, f := range required {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			return Pet{}, &MissingFieldError{Kind: ErrInvalidRequest, Field: f.field}
		}
	}

	// Los mismos valores recortados van al prompt y a la entidad.
	animal := strings.TrimSpace(*in.Animal)
	personality := strings.TrimSpace(*in.Personality)
	coloration := strings.TrimSpace(*in.Coloration)

	name, err := s.generate(ctx, naming.Traits{
		Species:     animal,
		Color:       coloration,
		Personality: personality,
	})
	if err != nil {
		return Pet{}, err
	}

	p, err := NewPet(animal, personality, coloration, name)
	if err != nil {
		return Pet{}, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}

	s.logger.Info("pet created", zap.Int64("pet_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Resolve valida el id crudo del path y busca la mascota por PK.
// Cualquier error de parseo => ErrInvalidID; inexistente => ErrNotFound.
func (s *Service) Resolve(ctx context.Context, rawID string) (Pet, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return Pet{}, &LookupError{Kind: ErrInvalidID, ID: rawID}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, &LookupError{Kind: ErrNotFound, ID: strconv.FormatInt(id, 10)}
		}
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, rawID string) (Pet, error) {
	return s.Resolve(ctx, rawID)
}

// RegenerateName pide un nombre nuevo con los rasgos guardados y lo persiste.
// Si la generación falla o el nombre viene vacío el registro queda intacto.
func (s *Service) RegenerateName(ctx context.Context, rawID string) (Pet, error) {
	p, err := s.Resolve(ctx, rawID)
	if err != nil {
		return Pet{}, err
	}

	name, err := s.generate(ctx, naming.Traits{
		Species:     p.Animal,
		Color:       p.Coloration,
		Personality: p.Personality,
	})
	if err != nil {
		return Pet{}, err
	}

	renamed, err := NewPet(p.Animal, p.Personality, p.Coloration, name)
	if err != nil {
		return Pet{}, &GenerationError{Err: err}
	}
	renamed.ID = p.ID

	if err := s.repo.UpdateName(ctx, renamed.ID, renamed.Name); err != nil {
		return Pet{}, err
	}

	s.logger.Info("pet renamed",
		zap.Int64("pet_id", p.ID),
		zap.String("old_name", p.Name),
		zap.String("new_name", renamed.Name))

	return renamed, nil
}

func (s *Service) generate(ctx context.Context, t naming.Traits) (string, error) {
	if s.namer == nil {
		return "", &GenerationError{Err: naming.ErrNotConfigured}
	}

	name, err := s.namer.GenerateName(ctx, t)
	if err != nil {
		s.logger.Warn("name generation failed", zap.Error(err))
		return "", &GenerationError{Err: err}
	}
	return name, nil
}
