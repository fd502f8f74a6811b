package adoptions

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc, func(*http.Request) ListFilter { return ListFilter{} }))
		ar.Post("/", createAdoptionHandler(svc))

		ar.Get("/user/{userID}", listAdoptionsHandler(svc, func(r *http.Request) ListFilter {
			return ListFilter{UserID: chi.URLParam(r, "userID")}
		}))
		ar.Get("/pet/{petID}", listAdoptionsHandler(svc, func(r *http.Request) ListFilter {
			return ListFilter{PetID: chi.URLParam(r, "petID")}
		}))

		ar.Get("/{adoptionID}", getAdoptionHandler(svc))
		ar.Put("/{adoptionID}", updateAdoptionHandler(svc))
		ar.Delete("/{adoptionID}", deleteAdoptionHandler(svc))
	})
}

// createAdoptionRequest es el cuerpo para solicitar una adopción.
type createAdoptionRequest struct {
	User  string `json:"user"`
	Pet   string `json:"pet"`
	Notes string `json:"notes"`
}

type updateAdoptionRequest struct {
	Status *Status `json:"status" enums:"pending,approved,rejected,completed"`
	Notes  *string `json:"notes"`
}

// AdoptionResponse representa una adopción con usuario y mascota populados.
type AdoptionResponse struct {
	ID           string      `json:"id"`
	User         UserSummary `json:"user"`
	Pet          PetSummary  `json:"pet"`
	Status       Status      `json:"status"`
	AdoptionDate *time.Time  `json:"adoptionDate,omitempty"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones
// @Description Lista adopciones con usuario y mascota populados. Las variantes /user/{userID} y /pet/{petID} filtran por referencia.
// @Tags adoptions
// @Produce json
// @Success 200 {array} AdoptionResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /adoptions [get]
// @Router /adoptions/user/{userID} [get]
// @Router /adoptions/pet/{petID} [get]
func listAdoptionsHandler(svc *Service, filterFrom func(*http.Request) ListFilter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), filterFrom(r))
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]AdoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(r, svc, a))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createAdoptionHandler godoc
// @Summary Crear solicitud de adopción
// @Description Valida que usuario y mascota existan. Solo puede existir una adopción por par usuario/mascota.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body createAdoptionRequest true "Usuario, mascota y notas"
// @Success 201 {object} AdoptionResponse
// @Failure 400 {object} httpjson.ErrorResponse "datos inválidos / adopción duplicada"
// @Failure 404 {object} httpjson.ErrorResponse "usuario o mascota no encontrado"
// @Router /adoptions [post]
func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdoptionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			UserID: req.User,
			PetID:  req.Pet,
			Notes:  req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toResponse(r, svc, a))
	}
}

// getAdoptionHandler godoc
// @Summary Obtener una adopción por ID
// @Tags adoptions
// @Produce json
// @Param adoptionID path string true "ID de la adopción"
// @Success 200 {object} AdoptionResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adoptions/{adoptionID} [get]
func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adoptionID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(r, svc, a))
	}
}

// updateAdoptionHandler godoc
// @Summary Actualizar estado o notas de una adopción
// @Tags adoptions
// @Accept json
// @Produce json
// @Param adoptionID path string true "ID de la adopción"
// @Param payload body updateAdoptionRequest true "Estado y/o notas"
// @Success 200 {object} AdoptionResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adoptions/{adoptionID} [put]
func updateAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateAdoptionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "adoptionID"), UpdateInput{
			Status: req.Status,
			Notes:  req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(r, svc, a))
	}
}

// deleteAdoptionHandler godoc
// @Summary Eliminar una adopción
// @Tags adoptions
// @Produce json
// @Param adoptionID path string true "ID de la adopción"
// @Success 200 {object} httpjson.MessageResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adoptions/{adoptionID} [delete]
func deleteAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "adoptionID")); err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Message(w, http.StatusOK, "Adopción eliminada exitosamente")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Error(w, http.StatusBadRequest, "Datos de entrada inválidos")
	case errors.Is(err, ErrConflict):
		httpjson.Error(w, http.StatusBadRequest, "Ya existe una adopción para este usuario y mascota")
	case errors.Is(err, ErrUserNotFound):
		httpjson.Error(w, http.StatusNotFound, "Usuario no encontrado")
	case errors.Is(err, ErrPetNotFound):
		httpjson.Error(w, http.StatusNotFound, "Mascota no encontrada")
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "Adopción no encontrada")
	default:
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func toResponse(r *http.Request, svc *Service, a Adoption) AdoptionResponse {
	u, p := svc.Populate(r.Context(), a)
	return AdoptionResponse{
		ID:           a.ID,
		User:         u,
		Pet:          p,
		Status:       a.Status,
		AdoptionDate: a.AdoptionDate,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
