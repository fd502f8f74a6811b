package pets

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// Owner es el resumen del dueño que se embebe en las respuestas.
type Owner struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// OwnerLookup evita importar el paquete users (rompe ciclos).
// ok=false si el usuario no existe (referencia colgante).
type OwnerLookup func(ctx context.Context, userID string) (Owner, bool)

func RegisterRoutes(r chi.Router, svc *Service, owners OwnerLookup) {
	r.Route("/pets", func(pr chi.Router) {
		// /count/species antes que /{petID}
		pr.Get("/count/species", countBySpeciesHandler(svc))

		pr.Get("/", listPetsHandler(svc, owners))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc, owners))
		pr.Put("/{petID}", updatePetHandler(svc, owners))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// createPetRequest es el cuerpo para registrar una mascota.
type createPetRequest struct {
	Name           string         `json:"name"`
	Species        Species        `json:"species"`
	Breed          string         `json:"breed"`
	Age            *float64       `json:"age"`
	Color          string         `json:"color"`
	Size           Size           `json:"size" enums:"pequeño,mediano,grande,extra grande"`
	Weight         *float64       `json:"weight"`
	Description    string         `json:"description"`
	Personality    []Personality  `json:"personality"`
	IsVaccinated   bool           `json:"isVaccinated"`
	IsNeutered     bool           `json:"isNeutered"`
	GoodWithKids   *bool          `json:"goodWithKids"`
	GoodWithPets   *bool          `json:"goodWithPets"`
	HealthStatus   HealthStatus   `json:"healthStatus" enums:"excelente,bueno,regular,necesita cuidados especiales"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus" enums:"disponible,en proceso,adoptado,no disponible"`
	Location       *Location      `json:"location"`
	MicrochipID    string         `json:"microchipId"`
	SpecialNeeds   string         `json:"specialNeeds"`
}

type updatePetRequest struct {
	Name           *string         `json:"name"`
	Breed          *string         `json:"breed"`
	Age            *float64        `json:"age"`
	Color          *string         `json:"color"`
	Size           *Size           `json:"size"`
	Weight         *float64        `json:"weight"`
	Description    *string         `json:"description"`
	Personality    *[]Personality  `json:"personality"`
	IsVaccinated   *bool           `json:"isVaccinated"`
	IsNeutered     *bool           `json:"isNeutered"`
	GoodWithKids   *bool           `json:"goodWithKids"`
	GoodWithPets   *bool           `json:"goodWithPets"`
	HealthStatus   *HealthStatus   `json:"healthStatus"`
	AdoptionStatus *AdoptionStatus `json:"adoptionStatus"`
	Location       *Location       `json:"location"`
	Owner          *string         `json:"owner"`
	SpecialNeeds   *string         `json:"specialNeeds"`
}

// PetResponse representa una mascota devuelta por la API.
type PetResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Species         Species          `json:"species"`
	Breed           string           `json:"breed"`
	Age             float64          `json:"age"`
	AgeDescription  string           `json:"ageDescription"`
	Color           string           `json:"color"`
	Size            Size             `json:"size"`
	Weight          float64          `json:"weight"`
	Description     string           `json:"description"`
	Personality     []Personality    `json:"personality"`
	IsVaccinated    bool             `json:"isVaccinated"`
	IsNeutered      bool             `json:"isNeutered"`
	GoodWithKids    bool             `json:"goodWithKids"`
	GoodWithPets    bool             `json:"goodWithPets"`
	HealthStatus    HealthStatus     `json:"healthStatus"`
	AdoptionStatus  AdoptionStatus   `json:"adoptionStatus"`
	Location        Location         `json:"location"`
	Owner           *Owner           `json:"owner,omitempty"`
	MedicalHistory  []MedicalRecord  `json:"medicalHistory"`
	MicrochipID     string           `json:"microchipId,omitempty"`
	SpecialNeeds    string           `json:"specialNeeds,omitempty"`
	ImageURL        string           `json:"imageUrl,omitempty"`
	RescueDate      *time.Time       `json:"rescueDate,omitempty"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista mascotas con el dueño populado. Filtros opcionales por especie y estado de adopción.
// @Tags pets
// @Produce json
// @Param species query string false "Especie (ej: perro)"
// @Param adoptionStatus query string false "Estado de adopción (ej: disponible)"
// @Success 200 {array} PetResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets [get]
func listPetsHandler(svc *Service, owners OwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Species:        Species(strings.TrimSpace(q.Get("species"))),
			AdoptionStatus: AdoptionStatus(strings.TrimSpace(q.Get("adoptionStatus"))),
		})
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponses(r.Context(), items, owners))
	}
}

// createPetHandler godoc
// @Summary Crear una mascota
// @Description name, species, breed, age, color, size y weight son obligatorios. El resto toma valores por defecto.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:           req.Name,
			Species:        req.Species,
			Breed:          req.Breed,
			Age:            req.Age,
			Color:          req.Color,
			Size:           req.Size,
			Weight:         req.Weight,
			Description:    req.Description,
			Personality:    req.Personality,
			IsVaccinated:   req.IsVaccinated,
			IsNeutered:     req.IsNeutered,
			GoodWithKids:   req.GoodWithKids,
			GoodWithPets:   req.GoodWithPets,
			HealthStatus:   req.HealthStatus,
			AdoptionStatus: req.AdoptionStatus,
			Location:       req.Location,
			MicrochipID:    req.MicrochipID,
			SpecialNeeds:   req.SpecialNeeds,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, ToResponse(p, nil))
	}
}

// getPetHandler godoc
// @Summary Obtener una mascota por ID
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, owners OwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(p, lookupOwner(r.Context(), p, owners)))
	}
}

// updatePetHandler godoc
// @Summary Actualizar una mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} PetResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, owners OwnerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:           req.Name,
			Breed:          req.Breed,
			Age:            req.Age,
			Color:          req.Color,
			Size:           req.Size,
			Weight:         req.Weight,
			Description:    req.Description,
			Personality:    req.Personality,
			IsVaccinated:   req.IsVaccinated,
			IsNeutered:     req.IsNeutered,
			GoodWithKids:   req.GoodWithKids,
			GoodWithPets:   req.GoodWithPets,
			HealthStatus:   req.HealthStatus,
			AdoptionStatus: req.AdoptionStatus,
			Location:       req.Location,
			OwnerID:        req.Owner,
			SpecialNeeds:   req.SpecialNeeds,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(p, lookupOwner(r.Context(), p, owners)))
	}
}

// deletePetHandler godoc
// @Summary Eliminar una mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} httpjson.MessageResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Message(w, http.StatusOK, "Mascota eliminada exitosamente")
	}
}

// countBySpeciesHandler godoc
// @Summary Contar mascotas por especie
// @Description Devuelve un objeto especie -> cantidad.
// @Tags pets
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /pets/count/species [get]
func countBySpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.CountBySpecies(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make(map[string]int, len(counts))
		for _, c := range counts {
			out[string(c.Species)] = c.Count
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// ParseFloatParam devuelve nil si el parámetro está vacío.
func ParseFloatParam(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrConflict):
		httpjson.Error(w, http.StatusBadRequest, "Microchip ya registrado")
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "Mascota no encontrada")
	default:
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func lookupOwner(ctx context.Context, p Pet, owners OwnerLookup) *Owner {
	if p.OwnerID == "" {
		return nil
	}
	if owners != nil {
		if o, ok := owners(ctx, p.OwnerID); ok {
			return &o
		}
	}
	return &Owner{ID: p.OwnerID}
}

// ToResponses popula el dueño de cada mascota.
func ToResponses(ctx context.Context, items []Pet, owners OwnerLookup) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p, lookupOwner(ctx, p, owners)))
	}
	return out
}

func ToResponse(p Pet, owner *Owner) PetResponse {
	if owner == nil && p.OwnerID != "" {
		owner = &Owner{ID: p.OwnerID}
	}
	personality := p.Personality
	if personality == nil {
		personality = []Personality{}
	}
	history := p.MedicalHistory
	if history == nil {
		history = []MedicalRecord{}
	}
	return PetResponse{
		ID:              p.ID,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		Age:             p.Age,
		AgeDescription:  p.AgeDescription(),
		Color:           p.Color,
		Size:            p.Size,
		Weight:          p.Weight,
		Description:     p.Description,
		Personality:     personality,
		IsVaccinated:    p.IsVaccinated,
		IsNeutered:      p.IsNeutered,
		GoodWithKids:    p.GoodWithKids,
		GoodWithPets:    p.GoodWithPets,
		HealthStatus:    p.HealthStatus,
		AdoptionStatus:  p.AdoptionStatus,
		Location:        p.Location,
		Owner:           owner,
		MedicalHistory:  history,
		MicrochipID:     p.MicrochipID,
		SpecialNeeds:    p.SpecialNeeds,
		ImageURL:        p.ImageURL,
		RescueDate:      p.RescueDate,
		Characteristics: p.Characteristics,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
