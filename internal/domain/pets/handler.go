package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("pets.http")

	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))

		// PATCH no recibe body: regenera el nombre con los rasgos guardados.
		pr.Patch("/{petID}", regeneratePetNameHandler(svc, log))
	})
}

type createPetRequest struct {
	Animal      *string `json:"animal"`
	Personality *string `json:"personality"`
	Coloration  *string `json:"coloration"`
}

type petResponse struct {
	ID          int64  `json:"id"`
	Animal      string `json:"animal"`
	Personality string `json:"personality"`
	Coloration  string `json:"coloration"`
	Name        string `json:"name"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createPetHandler godoc
// @Summary  Crea una mascota con nombre generado por IA
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    body body createPetRequest true "animal, personality, coloration"
// @Success  201 {object} petResponse
// @Failure  400 {object} messageResponse
// @Failure  500 {object} messageResponse
// @Router   /pets [post]
func createPetHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var te *json.UnmarshalTypeError
			if errors.As(err, &te) && te.Field != "" {
				writeMessage(w, http.StatusBadRequest, "Invalid request: "+te.Field+" must be a string")
				return
			}
			writeMessage(w, http.StatusBadRequest, "Invalid request: malformed JSON body")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Animal:      req.Animal,
			Personality: req.Personality,
			Coloration:  req.Coloration,
		})
		if err != nil {
			var mf *MissingFieldError
			var ge *GenerationError
			switch {
			case errors.As(err, &mf) && errors.Is(err, ErrInvalidData):
				writeMessage(w, http.StatusBadRequest, "Invalid data: missing "+mf.Field)
			case errors.As(err, &mf):
				writeMessage(w, http.StatusBadRequest, "Invalid request: missing "+mf.Field)
			case errors.As(err, &ge):
				writeMessage(w, http.StatusInternalServerError, "AI name generation failed: "+ge.Error())
			default:
				log.Error("create pet failed", zap.Error(err))
				writeMessage(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary  Lista todas las mascotas
// @Tags     pets
// @Produce  json
// @Success  200 {array} petResponse
// @Router   /pets [get]
func listPetsHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list pets failed", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary  Obtiene una mascota por id
// @Tags     pets
// @Produce  json
// @Param    petID path int true "pet id"
// @Success  200 {object} petResponse
// @Failure  400 {object} messageResponse
// @Failure  404 {object} messageResponse
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if writeLookupError(w, err) {
				return
			}
			log.Error("get pet failed", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// regeneratePetNameHandler godoc
// @Summary  Regenera el nombre de una mascota
// @Tags     pets
// @Param    petID path int true "pet id"
// @Success  204
// @Failure  400 {object} messageResponse
// @Failure  404 {object} messageResponse
// @Failure  500 {object} messageResponse
// @Router   /pets/{petID} [patch]
func regeneratePetNameHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := svc.RegenerateName(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if writeLookupError(w, err) {
				return
			}
			var ge *GenerationError
			if !errors.As(err, &ge) {
				log.Error("save regenerated name failed", zap.Error(err))
			}
			writeMessage(w, http.StatusInternalServerError, "Failed to regenerate name: "+err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeLookupError responde 400/404 si err viene de Resolve.
func writeLookupError(w http.ResponseWriter, err error) bool {
	var le *LookupError
	if !errors.As(err, &le) {
		return false
	}
	status := http.StatusBadRequest
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
	}
	writeMessage(w, status, le.Error())
	return true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Animal:      p.Animal,
		Personality: p.Personality,
		Coloration:  p.Coloration,
		Name:        p.Name,
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
