package pets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"pet-namer/internal/ports/naming"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID    int64
	byID      map[int64]Pet
	updateErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) UpdateName(ctx context.Context, id int64, name string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	p.Name = name
	r.byID[id] = p
	return nil
}

func staticNamer(name string, err error) naming.Generator {
	return naming.GeneratorFunc(func(context.Context, naming.Traits) (string, error) {
		return name, err
	})
}

func strp(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_PersistsWithGeneratedName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, staticNamer("Pumpkin", nil), nil)

	p, err := svc.Create(context.Background(), CreateInput{
		Animal:      strp(" cat "),
		Personality: strp("sassy"),
		Coloration:  strp("orange"),
	})
	require.NoError(t, err)

	assert.Equal(t, Pet{ID: 1, Animal: "cat", Personality: "sassy", Coloration: "orange", Name: "Pumpkin"}, p)
	assert.Equal(t, p, repo.byID[1])
}

func TestService_Create_MissingFieldOrder(t *testing.T) {
	svc := NewService(newTestRepo(), staticNamer("X", nil), nil)

	_, err := svc.Create(context.Background(), CreateInput{Coloration: strp("red")})

	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "animal", mf.Field)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// Blanco cuenta como ausente
	_, err = svc.Create(context.Background(), CreateInput{Animal: strp("cat"), Personality: strp("  "), Coloration: strp("red")})
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "personality", mf.Field)
}

func TestService_Create_GenerationError(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, staticNamer("", naming.ErrUpstream), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Animal: strp("cat"), Personality: strp("calm"), Coloration: strp("white"),
	})

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.ErrorIs(t, err, naming.ErrUpstream)
	assert.Empty(t, repo.byID)
}

func TestService_Create_NilNamer(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Animal: strp("cat"), Personality: strp("calm"), Coloration: strp("white"),
	})
	assert.ErrorIs(t, err, naming.ErrNotConfigured)
}

func TestService_Create_BlankGeneratedNameIsInvalidData(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, staticNamer("   ", nil), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Animal: strp("cat"), Personality: strp("calm"), Coloration: strp("white"),
	})

	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "name", mf.Field)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Empty(t, repo.byID)
}

func TestService_Resolve(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, staticNamer("Ziggy", nil), nil)
	created, err := svc.Create(context.Background(), CreateInput{
		Animal: strp("lizard"), Personality: strp("chill"), Coloration: strp("green"),
	})
	require.NoError(t, err)

	got, err := svc.Resolve(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	for _, raw := range []string{"abc", "", "1.5", "99999999999999999999"} {
		_, err = svc.Resolve(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidID, "raw %q", raw)
		assert.Equal(t, "Pet "+raw+" invalid", err.Error())
	}

	_, err = svc.Resolve(context.Background(), "007")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Pet 7 not found", err.Error())
}

func TestService_RegenerateName(t *testing.T) {
	repo := newTestRepo()
	var got naming.Traits
	names := []string{"First", "Second"}
	svc := NewService(repo, naming.GeneratorFunc(func(_ context.Context, tr naming.Traits) (string, error) {
		got = tr
		n := names[0]
		names = names[1:]
		return n, nil
	}), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Animal: strp("horse"), Personality: strp("proud"), Coloration: strp("bay"),
	})
	require.NoError(t, err)

	p, err := svc.RegenerateName(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Second", p.Name)
	assert.Equal(t, "Second", repo.byID[1].Name)
	assert.Equal(t, naming.Traits{Species: "horse", Color: "bay", Personality: "proud"}, got)
}

func TestService_RegenerateName_FailuresKeepRecord(t *testing.T) {
	repo := newTestRepo()
	repo.byID[1] = Pet{ID: 1, Animal: "cow", Personality: "calm", Coloration: "spotted", Name: "Daisy"}
	repo.nextID = 1

	svc := NewService(repo, staticNamer("", errors.New("boom")), nil)
	_, err := svc.RegenerateName(context.Background(), "1")
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Daisy", repo.byID[1].Name)

	// Falla al guardar => se propaga tal cual
	repo.updateErr = errors.New("db down")
	svc = NewService(repo, staticNamer("Bella", nil), nil)
	_, err = svc.RegenerateName(context.Background(), "1")
	require.Error(t, err)
	assert.False(t, errors.As(err, &ge))
	assert.Equal(t, "Daisy", repo.byID[1].Name)
}

func TestService_RegenerateName_BlankNameKeepsRecord(t *testing.T) {
	repo := newTestRepo()
	repo.byID[1] = Pet{ID: 1, Animal: "cow", Personality: "calm", Coloration: "spotted", Name: "Daisy"}
	repo.nextID = 1

	svc := NewService(repo, staticNamer("   ", nil), nil)
	_, err := svc.RegenerateName(context.Background(), "1")

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, "Daisy", repo.byID[1].Name)
}

func TestService_RegenerateName_TrimsName(t *testing.T) {
	repo := newTestRepo()
	repo.byID[1] = Pet{ID: 1, Animal: "cow", Personality: "calm", Coloration: "spotted", Name: "Daisy"}
	repo.nextID = 1

	svc := NewService(repo, staticNamer("  Bella \n", nil), nil)
	p, err := svc.RegenerateName(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Bella", p.Name)
	assert.Equal(t, "Bella", repo.byID[1].Name)
}

func TestService_Create_SendsTrimmedTraits(t *testing.T) {
	repo := newTestRepo()
	var sent []naming.Traits
	svc := NewService(repo, naming.GeneratorFunc(func(_ context.Context, tr naming.Traits) (string, error) {
		sent = append(sent, tr)
		return "Tiger", nil
	}), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Animal: strp(" cat "), Personality: strp("\tfierce"), Coloration: strp("striped  "),
	})
	require.NoError(t, err)
	_, err = svc.RegenerateName(context.Background(), "1")
	require.NoError(t, err)

	// Create y RegenerateName piden con exactamente los mismos rasgos
	want := naming.Traits{Species: "cat", Color: "striped", Personality: "fierce"}
	require.Len(t, sent, 2)
	assert.Equal(t, want, sent[0])
	assert.Equal(t, want, sent[1])
}

func TestNewPet(t *testing.T) {
	p, err := NewPet("dog", "happy", "white", " Snowy ")
	require.NoError(t, err)
	assert.Equal(t, "Snowy", p.Name)
	assert.Zero(t, p.ID)

	_, err = NewPet("dog", "happy", "", "Snowy")
	var mf *MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "coloration", mf.Field)
	assert.Equal(t, "invalid data: missing coloration", err.Error())
}

// Handler: el 400 de construcción de entidad y el 500 de store.

func newTestHandler(repo Repository, namer naming.Generator) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo, namer, nil), nil)
	return r
}

func TestHandler_InvalidDataMessage(t *testing.T) {
	h := newTestHandler(newTestRepo(), staticNamer(" ", nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pets",
		strings.NewReader(`{"animal":"cat","personality":"calm","coloration":"white"}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid data: missing name"}`, rec.Body.String())
}

func TestHandler_NullFieldIsMissing(t *testing.T) {
	h := newTestHandler(newTestRepo(), staticNamer("X", nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pets",
		strings.NewReader(`{"animal":"cat","personality":null,"coloration":"white"}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request: missing personality"}`, rec.Body.String())
}

func TestHandler_NonStringField(t *testing.T) {
	repo := newTestRepo()
	h := newTestHandler(repo, staticNamer("X", nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pets",
		strings.NewReader(`{"animal":5,"personality":"calm","coloration":"white"}`))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request: animal must be a string"}`, rec.Body.String())
	assert.Empty(t, repo.byID)
}

func TestHandler_RegenerateBlankName(t *testing.T) {
	repo := newTestRepo()
	repo.byID[1] = Pet{ID: 1, Animal: "cow", Personality: "calm", Coloration: "spotted", Name: "Daisy"}
	h := newTestHandler(repo, staticNamer(" ", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/pets/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to regenerate name: invalid data: missing name"}`, rec.Body.String())
	assert.Equal(t, "Daisy", repo.byID[1].Name)
}

func TestHandler_RegenerateStoreFailure(t *testing.T) {
	repo := newTestRepo()
	repo.byID[1] = Pet{ID: 1, Animal: "cow", Personality: "calm", Coloration: "spotted", Name: "Daisy"}
	repo.updateErr = errors.New("connection reset")
	h := newTestHandler(repo, staticNamer("Bella", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/pets/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to regenerate name: connection reset"}`, rec.Body.String())
}
