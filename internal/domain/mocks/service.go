package mocks

import (
	"context"
	"errors"
	"fmt"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/mocking"
	"pet-adoption-api/internal/seed"
)

var ErrInvalidInput = errors.New("invalid input")

const DefaultCount = 50

// Seeder es lo que necesita el endpoint de seed.
type Seeder interface {
	Run(ctx context.Context) (seed.Result, error)
}

type Options struct {
	PasswordCost int

	// NewSource crea la fuente de cada request. Por defecto mocking.NewRandomSource.
	NewSource func() mocking.Source
}

type Service struct {
	users  users.Repository
	pets   pets.Repository
	seeder Seeder
	opts   Options
}

func NewService(u users.Repository, p pets.Repository, s Seeder, opts Options) *Service {
	if opts.NewSource == nil {
		opts.NewSource = func() mocking.Source { return mocking.NewRandomSource() }
	}
	return &Service{users: u, pets: p, seeder: s, opts: opts}
}

// generator arma un generador nuevo por request: no se comparte entre goroutines.
func (s *Service) generator() (*mocking.Generator, mocking.Source) {
	src := s.opts.NewSource()
	return mocking.New(src, mocking.Options{PasswordCost: s.opts.PasswordCost}), src
}

// MockUsers genera usuarios sin persistirlos.
func (s *Service) MockUsers(n int) ([]users.User, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	g, _ := s.generator()
	return g.Users(n), nil
}

// MockPets genera mascotas sin dueño y sin persistirlas.
func (s *Service) MockPets(n int) ([]pets.Pet, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}
	g, _ := s.generator()
	return g.Pets(n, ""), nil
}

type GenerateResult struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

// GenerateData inserta nUsers usuarios y nPets mascotas. Cada mascota recibe
// un dueño al azar entre los usuarios recién creados (si los hay) y la lista
// de mascotas de cada dueño se actualiza.
func (s *Service) GenerateData(ctx context.Context, nUsers, nPets int) (GenerateResult, error) {
	if nUsers < 0 || nPets < 0 {
		return GenerateResult{}, ErrInvalidInput
	}

	g, src := s.generator()

	createdUsers, err := s.users.InsertMany(ctx, g.Users(nUsers))
	if err != nil {
		return GenerateResult{}, fmt.Errorf("insert users: %w", err)
	}

	generated := g.Pets(nPets, "")
	if len(createdUsers) > 0 {
		for i := range generated {
			generated[i].OwnerID = mocking.Pick(src, createdUsers).ID
		}
	}

	createdPets, err := s.pets.InsertMany(ctx, generated)
	if err != nil {
		return GenerateResult{Users: len(createdUsers)}, fmt.Errorf("insert pets: %w", err)
	}

	owned, _ := pets.GroupByOwner(createdPets)
	for _, u := range createdUsers {
		ids, ok := owned[u.ID]
		if !ok {
			continue
		}
		u.Pets = append(u.Pets, ids...)
		if err := s.users.Update(ctx, u); err != nil {
			return GenerateResult{Users: len(createdUsers), Pets: len(createdPets)}, fmt.Errorf("update user %s pets: %w", u.ID, err)
		}
	}

	return GenerateResult{Users: len(createdUsers), Pets: len(createdPets)}, nil
}

func (s *Service) Seed(ctx context.Context) (seed.Result, error) {
	return s.seeder.Run(ctx)
}
