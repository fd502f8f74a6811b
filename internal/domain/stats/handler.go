package stats

import (
	"net/http"
	"strings"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, owners pets.OwnerLookup) {
	r.Route("/stats", func(sr chi.Router) {
		sr.Get("/dashboard", dashboardHandler(svc))
		sr.Get("/pets/search", searchPetsHandler(svc, owners))
	})
}

// SearchResponse incluye los filtros recibidos tal como llegaron.
type SearchResponse struct {
	Count   int                `json:"count"`
	Filters map[string]string  `json:"filters"`
	Pets    []pets.PetResponse `json:"pets"`
}

// dashboardHandler godoc
// @Summary Obtener estadísticas completas del refugio
// @Tags stats
// @Produce json
// @Success 200 {object} Dashboard
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /stats/dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Dashboard(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "Error obteniendo estadísticas")
			return
		}
		httpjson.Write(w, http.StatusOK, d)
	}
}

// searchPetsHandler godoc
// @Summary Búsqueda avanzada de mascotas con filtros
// @Tags stats
// @Produce json
// @Param species query string false "Especie"
// @Param age_min query number false "Edad mínima"
// @Param age_max query number false "Edad máxima"
// @Param size query string false "Tamaño"
// @Param personality query string false "Rasgo de personalidad"
// @Param city query string false "Ciudad (contiene, sin distinguir mayúsculas)"
// @Param available query bool false "Solo disponibles"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /stats/pets/search [get]
func searchPetsHandler(svc *Service, owners pets.OwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		ageMin, err := pets.ParseFloatParam(q.Get("age_min"))
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "age_min inválido")
			return
		}
		ageMax, err := pets.ParseFloatParam(q.Get("age_max"))
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "age_max inválido")
			return
		}

		filter := pets.ListFilter{
			Species:     pets.Species(strings.TrimSpace(q.Get("species"))),
			Size:        pets.Size(strings.TrimSpace(q.Get("size"))),
			Personality: pets.Personality(strings.TrimSpace(q.Get("personality"))),
			City:        strings.TrimSpace(q.Get("city")),
			AgeMin:      ageMin,
			AgeMax:      ageMax,
		}
		if q.Get("available") == "true" {
			filter.AdoptionStatus = pets.AdoptionAvailable
		}

		items, err := svc.Search(r.Context(), filter)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "Error en búsqueda")
			return
		}

		filters := make(map[string]string, len(q))
		for k := range q {
			filters[k] = q.Get(k)
		}

		httpjson.Write(w, http.StatusOK, SearchResponse{
			Count:   len(items),
			Filters: filters,
			Pets:    pets.ToResponses(r.Context(), items, owners),
		})
	}
}
