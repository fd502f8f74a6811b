package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("email already exists")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)

	// InsertMany persiste en orden y devuelve los registros con ID asignado.
	InsertMany(ctx context.Context, items []User) ([]User, error)
	DeleteAll(ctx context.Context) error
}
