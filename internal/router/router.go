package router

import (
	"database/sql"
	"net/http"

	_ "pet-namer/docs"
	mem "pet-namer/internal/adapters/storage/memory"
	pg "pet-namer/internal/adapters/storage/postgres"
	"pet-namer/internal/domain/pets"
	"pet-namer/internal/middleware"
	"pet-namer/internal/ports/naming"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Namer genera los nombres. nil => toda generación falla con ErrNotConfigured.
	Namer naming.Generator

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.Recover(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
	} else {
		logger.Info("no database configured; using in-memory pet store")
		petRepo = mem.NewPetRepo()
	}

	petsSvc := pets.NewService(petRepo, opts.Namer, logger)
	pets.RegisterRoutes(r, petsSvc, logger)

	return r
}
