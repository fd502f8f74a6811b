package adoptions

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("adoption not found")
	ErrConflict = errors.New("adoption already exists for user and pet")
)

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	List(ctx context.Context, filter ListFilter) ([]Adoption, error)
	Update(ctx context.Context, a Adoption) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)

	// InsertMany persiste en orden y devuelve los registros con ID asignado.
	InsertMany(ctx context.Context, items []Adoption) ([]Adoption, error)
	DeleteAll(ctx context.Context) error
}

type ListFilter struct {
	UserID string
	PetID  string
}

func (f ListFilter) Matches(a Adoption) bool {
	if f.UserID != "" && a.UserID != f.UserID {
		return false
	}
	if f.PetID != "" && a.PetID != f.PetID {
		return false
	}
	return true
}
