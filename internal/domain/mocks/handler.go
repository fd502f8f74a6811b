package mocks

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/mocks", func(mr chi.Router) {
		mr.Get("/mockingusers", mockingUsersHandler(svc))
		mr.Get("/mockingpets", mockingPetsHandler(svc))
		mr.Post("/generateData", generateDataHandler(svc))
		mr.Post("/seed", seedHandler(svc))
	})
}

type generateDataRequest struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

type GenerateDataResponse struct {
	Message string `json:"message"`
	Users   int    `json:"users"`
	Pets    int    `json:"pets"`
}

// mockingUsersHandler godoc
// @Summary Generar usuarios mock (no se persisten)
// @Tags mocks
// @Produce json
// @Param count query int false "Cantidad (default 50)"
// @Success 200 {array} users.UserResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /mocks/mockingusers [get]
func mockingUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := countParam(w, r)
		if !ok {
			return
		}
		items, err := svc.MockUsers(n)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "count inválido")
			return
		}

		out := make([]users.UserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, users.ToResponse(u))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// mockingPetsHandler godoc
// @Summary Generar mascotas mock (no se persisten)
// @Tags mocks
// @Produce json
// @Param count query int false "Cantidad (default 50)"
// @Success 200 {array} pets.PetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /mocks/mockingpets [get]
func mockingPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := countParam(w, r)
		if !ok {
			return
		}
		items, err := svc.MockPets(n)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "count inválido")
			return
		}
		httpjson.Write(w, http.StatusOK, pets.ToResponses(r.Context(), items, nil))
	}
}

// generateDataHandler godoc
// @Summary Generar e insertar usuarios y mascotas
// @Description Cada mascota recibe un dueño al azar entre los usuarios generados.
// @Tags mocks
// @Accept json
// @Produce json
// @Param payload body generateDataRequest true "Cantidades"
// @Success 200 {object} GenerateDataResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /mocks/generateData [post]
func generateDataHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateDataRequest
		if err := httpjson.Decode(r, &req); err != nil && !errors.Is(err, httpjson.ErrEmptyBody) {
			httpjson.Error(w, http.StatusBadRequest, "Parámetros inválidos: users y pets deben ser números positivos.")
			return
		}

		res, err := svc.GenerateData(r.Context(), req.Users, req.Pets)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Error(w, http.StatusBadRequest, "Parámetros inválidos: users y pets deben ser números positivos.")
				return
			}
			httpjson.Error(w, http.StatusInternalServerError, "Error al generar o insertar datos.")
			return
		}

		httpjson.Write(w, http.StatusOK, GenerateDataResponse{
			Message: "Datos generados e insertados correctamente.",
			Users:   res.Users,
			Pets:    res.Pets,
		})
	}
}

// seedHandler godoc
// @Summary Repoblar el store con datos mock
// @Description Borra usuarios, mascotas y adopciones y los regenera. Si falla usa un dataset mínimo.
// @Tags mocks
// @Produce json
// @Success 200 {object} seed.Result
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /mocks/seed [post]
func seedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Seed(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "Error al poblar la base de datos")
			return
		}
		httpjson.Write(w, http.StatusOK, res)
	}
}

func countParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("count"))
	if raw == "" {
		return DefaultCount, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httpjson.Error(w, http.StatusBadRequest, "count inválido")
		return 0, false
	}
	return n, true
}
