package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	maxDescriptionLen  = 500
	maxSpecialNeedsLen = 200

	DefaultImageURL = "https://via.placeholder.com/300x300/4299E1/FFFFFF?text=🐾"
)

var knownPersonalities = map[Personality]struct{}{
	PersonalityAffectionate: {},
	PersonalityPlayful:      {},
	PersonalityCalm:         {},
	PersonalityEnergetic:    {},
	PersonalityProtective:   {},
	PersonalityIndependent:  {},
	PersonalitySociable:     {},
	PersonalityShy:          {},
	PersonalityCurious:      {},
	PersonalityObedient:     {},
	PersonalityNocturnal:    {},
}

type Service struct {
	repo   Repository
	owners OwnerLookup
	now    func() time.Time
}

// NewService crea el servicio. owners valida que el dueño asignado en Update
// exista; nil no valida.
func NewService(repo Repository, owners OwnerLookup) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name        string
	Species     Species
	Breed       string
	Age         *float64
	Color       string
	Size        Size
	Weight      *float64
	Description string
	Personality []Personality

	IsVaccinated bool
	IsNeutered   bool
	GoodWithKids *bool
	GoodWithPets *bool

	HealthStatus   HealthStatus
	AdoptionStatus AdoptionStatus
	Location       *Location
	MicrochipID    string
	SpecialNeeds   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)
	color := strings.TrimSpace(in.Color)

	if name == "" || in.Species == "" || breed == "" || color == "" || in.Size == "" || in.Age == nil || in.Weight == nil {
		return Pet{}, fmt.Errorf("%w: los campos name, species, breed, age, color, size y weight son obligatorios", ErrInvalidInput)
	}

	now := s.now()
	p := Pet{
		ID:             uuid.NewString(),
		Name:           name,
		Species:        in.Species,
		Breed:          breed,
		Age:            *in.Age,
		Color:          color,
		Size:           in.Size,
		Weight:         *in.Weight,
		Description:    strings.TrimSpace(in.Description),
		Personality:    in.Personality,
		IsVaccinated:   in.IsVaccinated,
		IsNeutered:     in.IsNeutered,
		GoodWithKids:   boolOr(in.GoodWithKids, true),
		GoodWithPets:   boolOr(in.GoodWithPets, true),
		HealthStatus:   in.HealthStatus,
		AdoptionStatus: in.AdoptionStatus,
		MicrochipID:    strings.TrimSpace(in.MicrochipID),
		SpecialNeeds:   strings.TrimSpace(in.SpecialNeeds),
		ImageURL:       DefaultImageURL,
		RescueDate:     &now,
		MedicalHistory: []MedicalRecord{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if p.Personality == nil {
		p.Personality = []Personality{}
	}
	if p.HealthStatus == "" {
		p.HealthStatus = HealthGood
	}
	if p.AdoptionStatus == "" {
		p.AdoptionStatus = AdoptionAvailable
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if p.Location.Country == "" {
		p.Location.Country = DefaultCountry
	}
	if p.Description == "" {
		p.Description = fmt.Sprintf("%s es un %s muy especial que busca una familia amorosa.", p.Name, p.Species)
	}

	if err := Validate(p); err != nil {
		return Pet{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Count(ctx context.Context, filter ListFilter) (int, error) {
	return s.repo.Count(ctx, filter)
}

func (s *Service) CountBySpecies(ctx context.Context) ([]SpeciesCount, error) {
	return s.repo.CountBySpecies(ctx)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name           *string
	Breed          *string
	Age            *float64
	Color          *string
	Size           *Size
	Weight         *float64
	Description    *string
	Personality    *[]Personality
	IsVaccinated   *bool
	IsNeutered     *bool
	GoodWithKids   *bool
	GoodWithPets   *bool
	HealthStatus   *HealthStatus
	AdoptionStatus *AdoptionStatus
	Location       *Location
	OwnerID        *string
	SpecialNeeds   *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Color != nil {
		p.Color = strings.TrimSpace(*in.Color)
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Personality != nil {
		p.Personality = *in.Personality
	}
	if in.IsVaccinated != nil {
		p.IsVaccinated = *in.IsVaccinated
	}
	if in.IsNeutered != nil {
		p.IsNeutered = *in.IsNeutered
	}
	if in.GoodWithKids != nil {
		p.GoodWithKids = *in.GoodWithKids
	}
	if in.GoodWithPets != nil {
		p.GoodWithPets = *in.GoodWithPets
	}
	if in.HealthStatus != nil {
		p.HealthStatus = *in.HealthStatus
	}
	if in.AdoptionStatus != nil {
		p.AdoptionStatus = *in.AdoptionStatus
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.OwnerID != nil {
		ownerID := strings.TrimSpace(*in.OwnerID)
		if ownerID != "" && s.owners != nil {
			if _, ok := s.owners(ctx, ownerID); !ok {
				return Pet{}, fmt.Errorf("%w: owner %q no existe", ErrInvalidInput, ownerID)
			}
		}
		p.OwnerID = ownerID
	}
	if in.SpecialNeeds != nil {
		p.SpecialNeeds = strings.TrimSpace(*in.SpecialNeeds)
	}

	if p.Name == "" {
		return Pet{}, ErrInvalidInput
	}
	if err := Validate(p); err != nil {
		return Pet{}, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Validate chequea enums y rangos del modelo.
func Validate(p Pet) error {
	if !p.Species.Valid() {
		return fmt.Errorf("%w: species %q", ErrInvalidInput, p.Species)
	}
	if p.Size != "" && !p.Size.Valid() {
		return fmt.Errorf("%w: size %q", ErrInvalidInput, p.Size)
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: age fuera de rango [0,30]", ErrInvalidInput)
	}
	if p.Weight < MinWeight || p.Weight > MaxWeight {
		return fmt.Errorf("%w: weight fuera de rango [0.1,100]", ErrInvalidInput)
	}
	if p.HealthStatus != "" && !p.HealthStatus.Valid() {
		return fmt.Errorf("%w: healthStatus %q", ErrInvalidInput, p.HealthStatus)
	}
	if p.AdoptionStatus != "" && !p.AdoptionStatus.Valid() {
		return fmt.Errorf("%w: adoptionStatus %q", ErrInvalidInput, p.AdoptionStatus)
	}
	for _, v := range p.Personality {
		if _, ok := knownPersonalities[v]; !ok {
			return fmt.Errorf("%w: personality %q", ErrInvalidInput, v)
		}
	}
	if utf8.RuneCountInString(p.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description supera %d caracteres", ErrInvalidInput, maxDescriptionLen)
	}
	if utf8.RuneCountInString(p.SpecialNeeds) > maxSpecialNeedsLen {
		return fmt.Errorf("%w: specialNeeds supera %d caracteres", ErrInvalidInput, maxSpecialNeedsLen)
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
