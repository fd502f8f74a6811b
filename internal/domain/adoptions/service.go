package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user not found")
	ErrPetNotFound  = errors.New("pet not found")
)

// UserSummary y PetSummary son lo que se popula en las respuestas.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type PetSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

// Lookups evita importar users/pets (rompe ciclos). ok=false si no existe.
type Lookups struct {
	User func(ctx context.Context, id string) (UserSummary, bool)
	Pet  func(ctx context.Context, id string) (PetSummary, bool)
}

type Service struct {
	repo    Repository
	lookups Lookups
	now     func() time.Time
}

func NewService(repo Repository, lookups Lookups) *Service {
	return &Service{
		repo:    repo,
		lookups: lookups,
		now:     time.Now,
	}
}

type CreateInput struct {
	UserID string
	PetID  string
	Notes  string
}

// Create valida que usuario y mascota existan. El par duplicado lo rechaza el repo (ErrConflict).
func (s *Service) Create(ctx context.Context, in CreateInput) (Adoption, error) {
	userID := strings.TrimSpace(in.UserID)
	petID := strings.TrimSpace(in.PetID)
	if userID == "" || petID == "" {
		return Adoption{}, ErrInvalidInput
	}

	if s.lookups.User != nil {
		if _, ok := s.lookups.User(ctx, userID); !ok {
			return Adoption{}, ErrUserNotFound
		}
	}
	if s.lookups.Pet != nil {
		if _, ok := s.lookups.Pet(ctx, petID); !ok {
			return Adoption{}, ErrPetNotFound
		}
	}

	now := s.now()
	a := Adoption{
		ID:        uuid.NewString(),
		UserID:    userID,
		PetID:     petID,
		Status:    StatusPending,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Adoption, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

type UpdateInput struct {
	Status *Status
	Notes  *string
}

// Update: pasar a completed fija AdoptionDate; salir de completed la limpia.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Adoption, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}

	now := s.now()

	if in.Status != nil && *in.Status != "" {
		if !in.Status.Valid() {
			return Adoption{}, ErrInvalidInput
		}
		a.Status = *in.Status
		if a.Status == StatusCompleted {
			if a.AdoptionDate == nil {
				a.AdoptionDate = &now
			}
		} else {
			a.AdoptionDate = nil
		}
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}

	a.UpdatedAt = now
	if err := s.repo.Update(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Populate resuelve usuario y mascota; referencias colgantes quedan solo con ID.
func (s *Service) Populate(ctx context.Context, a Adoption) (UserSummary, PetSummary) {
	u := UserSummary{ID: a.UserID}
	p := PetSummary{ID: a.PetID}
	if s.lookups.User != nil {
		if v, ok := s.lookups.User(ctx, a.UserID); ok {
			u = v
		}
	}
	if s.lookups.Pet != nil {
		if v, ok := s.lookups.Pet(ctx, a.PetID); ok {
			p = v
		}
	}
	return u, p
}
