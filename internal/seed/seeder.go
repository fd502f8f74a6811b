// Package seed repuebla el store con datos mock consistentes.
package seed

import (
	"context"
	"fmt"
	"sync"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/mocking"
	"pet-adoption-api/internal/platform/logger"
)

// Plan define cuántos registros genera una corrida realista.
type Plan struct {
	Users     int
	Pets      int
	OwnedPets int // las primeras OwnedPets mascotas reciben dueño users[i % Users]
	Adoptions int
}

var DefaultPlan = Plan{Users: 15, Pets: 25, OwnedPets: 15, Adoptions: 12}

type Result struct {
	InsertedUsers     int  `json:"insertedUsers"`
	InsertedPets      int  `json:"insertedPets"`
	InsertedAdoptions int  `json:"insertedAdoptions"`
	Fallback          bool `json:"fallback"`
}

type Seeder struct {
	users     users.Repository
	pets      pets.Repository
	adoptions adoptions.Repository

	gen  *mocking.Generator
	log  logger.Logger
	plan Plan

	// Run no es reentrante: el generador no se comparte entre goroutines.
	mu sync.Mutex
}

func New(u users.Repository, p pets.Repository, a adoptions.Repository, gen *mocking.Generator, log logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{
		users:     u,
		pets:      p,
		adoptions: a,
		gen:       gen,
		log:       log.With(map[string]any{"component": "seeder"}),
		plan:      DefaultPlan,
	}
}

// WithPlan reemplaza el plan por defecto.
func (s *Seeder) WithPlan(p Plan) *Seeder {
	s.plan = p
	return s
}

// Run borra el store y lo repuebla. Si la corrida realista falla, inserta
// el dataset mínimo sin deshacer lo ya persistido.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.TryRealistic(ctx)
	if err == nil {
		s.log.Info("seed completed", map[string]any{
			"users":     res.InsertedUsers,
			"pets":      res.InsertedPets,
			"adoptions": res.InsertedAdoptions,
		})
		return res, nil
	}

	s.log.Error("realistic seed failed, using fallback", map[string]any{"err": err})
	return s.seedFallback(ctx)
}

// TryRealistic ejecuta la secuencia completa y corta en el primer error.
func (s *Seeder) TryRealistic(ctx context.Context) (Result, error) {
	plan := s.plan

	if err := s.clear(ctx); err != nil {
		return Result{}, err
	}

	savedUsers, err := s.users.InsertMany(ctx, s.gen.Users(plan.Users))
	if err != nil {
		return Result{}, fmt.Errorf("insert users: %w", err)
	}
	s.log.Debug("users inserted", map[string]any{"count": len(savedUsers)})

	generated := s.gen.Pets(plan.Pets, "")
	if len(savedUsers) > 0 {
		for i := 0; i < plan.OwnedPets && i < len(generated); i++ {
			generated[i].OwnerID = savedUsers[i%len(savedUsers)].ID
		}
	}

	savedPets, err := s.pets.InsertMany(ctx, generated)
	if err != nil {
		return Result{}, fmt.Errorf("insert pets: %w", err)
	}
	s.log.Debug("pets inserted", map[string]any{"count": len(savedPets)})

	owned, unowned := pets.GroupByOwner(savedPets)

	for i := 0; i < plan.OwnedPets && i < len(savedUsers); i++ {
		u := savedUsers[i]
		u.Pets = owned[u.ID]
		if u.Pets == nil {
			u.Pets = []string{}
		}
		if err := s.users.Update(ctx, u); err != nil {
			return Result{}, fmt.Errorf("update user %s pets: %w", u.ID, err)
		}
	}

	userIDs := make([]string, 0, len(savedUsers))
	for _, u := range savedUsers {
		userIDs = append(userIDs, u.ID)
	}

	generatedAdoptions, err := s.gen.Adoptions(plan.Adoptions, userIDs, unowned)
	if err != nil {
		return Result{}, fmt.Errorf("generate adoptions: %w", err)
	}
	savedAdoptions, err := s.adoptions.InsertMany(ctx, generatedAdoptions)
	if err != nil {
		return Result{}, fmt.Errorf("insert adoptions: %w", err)
	}

	return Result{
		InsertedUsers:     len(savedUsers),
		InsertedPets:      len(savedPets),
		InsertedAdoptions: len(savedAdoptions),
	}, nil
}

func (s *Seeder) clear(ctx context.Context) error {
	if err := s.adoptions.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear adoptions: %w", err)
	}
	if err := s.pets.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear pets: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}

func (s *Seeder) seedFallback(ctx context.Context) (Result, error) {
	ds := s.gen.Fallback()
	res := Result{Fallback: true}

	savedUsers, err := s.users.InsertMany(ctx, ds.Users)
	if err != nil {
		s.log.Error("fallback users failed", map[string]any{"err": err})
		return res, fmt.Errorf("fallback users: %w", err)
	}
	res.InsertedUsers = len(savedUsers)

	savedPets, err := s.pets.InsertMany(ctx, ds.Pets)
	if err != nil {
		s.log.Error("fallback pets failed", map[string]any{"err": err})
		return res, fmt.Errorf("fallback pets: %w", err)
	}
	res.InsertedPets = len(savedPets)

	s.log.Warn("fallback seed inserted", map[string]any{
		"users": res.InsertedUsers,
		"pets":  res.InsertedPets,
	})
	return res, nil
}
