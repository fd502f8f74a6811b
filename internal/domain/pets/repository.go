package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("pet not found")
	ErrConflict = errors.New("microchip already registered")
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter ListFilter) (int, error)
	CountBySpecies(ctx context.Context) ([]SpeciesCount, error)

	// InsertMany persiste en orden y devuelve los registros con ID asignado.
	InsertMany(ctx context.Context, items []Pet) ([]Pet, error)
	DeleteAll(ctx context.Context) error
}

// ListFilter: campos vacíos/nil no filtran.
type ListFilter struct {
	Species        Species
	AdoptionStatus AdoptionStatus
	Size           Size
	Personality    Personality
	City           string // contiene, sin distinguir mayúsculas
	OwnerID        string
	AgeMin         *float64
	AgeMax         *float64

	// NewestFirst ordena por created_at desc (por defecto asc).
	NewestFirst bool
}

type SpeciesCount struct {
	Species Species
	Count   int
}
