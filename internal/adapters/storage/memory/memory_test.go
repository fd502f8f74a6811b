package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
)

func TestUserRepo_UniqueEmail(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, users.User{ID: "u1", Email: "ana@email.com"}); err != nil {
		t.Fatalf("create #1: %v", err)
	}
	err := repo.Create(ctx, users.User{ID: "u2", Email: "ANA@email.com"})
	if !errors.Is(err, users.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserRepo_InsertMany_AssignsIDsInOrder(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	saved, err := repo.InsertMany(ctx, []users.User{
		{Email: "a@email.com"},
		{Email: "b@email.com"},
		{Email: "c@email.com"},
	})
	if err != nil {
		t.Fatalf("InsertMany: %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("expected 3 saved, got %d", len(saved))
	}
	for i, u := range saved {
		if u.ID == "" {
			t.Fatalf("user %d without id", i)
		}
	}
	if saved[0].Email != "a@email.com" || saved[2].Email != "c@email.com" {
		t.Fatalf("order not preserved: %#v", saved)
	}

	list, _ := repo.List(ctx)
	if len(list) != 3 || list[0].ID != saved[0].ID {
		t.Fatalf("expected list in insertion order")
	}
}

func TestUserRepo_InsertMany_DuplicateInBatchWritesNothing(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []users.User{
		{Email: "a@email.com"},
		{Email: "a@email.com"},
	})
	if !errors.Is(err, users.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	n, _ := repo.Count(ctx)
	if n != 0 {
		t.Fatalf("expected empty repo, got %d", n)
	}
}

func TestPetRepo_MicrochipUniqueOnlyWhenPresent(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []pets.Pet{
		{Name: "a"},
		{Name: "b"},
		{Name: "c", MicrochipID: "MCABC123456"},
	})
	if err != nil {
		t.Fatalf("pets without microchip must not collide: %v", err)
	}

	err = repo.Create(ctx, pets.Pet{ID: "p-x", MicrochipID: "MCABC123456"})
	if !errors.Is(err, pets.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPetRepo_ListFilterAndOrder(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	_ = repo.Create(ctx, pets.Pet{ID: "p1", Species: pets.SpeciesPerro, Age: 2, CreatedAt: base, Location: pets.Location{City: "Rosario"}})
	_ = repo.Create(ctx, pets.Pet{ID: "p2", Species: pets.SpeciesGato, Age: 8, CreatedAt: base.Add(time.Hour), Location: pets.Location{City: "Córdoba"}})
	_ = repo.Create(ctx, pets.Pet{ID: "p3", Species: pets.SpeciesPerro, Age: 5, CreatedAt: base.Add(2 * time.Hour), OwnerID: "u1"})

	dogs, _ := repo.List(ctx, pets.ListFilter{Species: pets.SpeciesPerro, NewestFirst: true})
	if len(dogs) != 2 || dogs[0].ID != "p3" || dogs[1].ID != "p1" {
		t.Fatalf("unexpected dogs order: %#v", dogs)
	}

	min := 3.0
	older, _ := repo.List(ctx, pets.ListFilter{AgeMin: &min})
	if len(older) != 2 {
		t.Fatalf("expected 2 pets with age >= 3, got %d", len(older))
	}

	city, _ := repo.List(ctx, pets.ListFilter{City: "rosa"})
	if len(city) != 1 || city[0].ID != "p1" {
		t.Fatalf("expected case-insensitive city match, got %#v", city)
	}

	owned, _ := repo.List(ctx, pets.ListFilter{OwnerID: "u1"})
	if len(owned) != 1 || owned[0].ID != "p3" {
		t.Fatalf("expected owner filter to match p3")
	}

	counts, _ := repo.CountBySpecies(ctx)
	if len(counts) != 2 || counts[0].Species != pets.SpeciesPerro || counts[0].Count != 2 {
		t.Fatalf("unexpected species counts: %#v", counts)
	}
}

func TestAdoptionRepo_UniquePair(t *testing.T) {
	repo := NewAdoptionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, adoptions.Adoption{ID: "a1", UserID: "u1", PetID: "p1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, adoptions.Adoption{ID: "a2", UserID: "u1", PetID: "p1"})
	if !errors.Is(err, adoptions.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Mismo usuario, otra mascota: ok
	if err := repo.Create(ctx, adoptions.Adoption{ID: "a3", UserID: "u1", PetID: "p2"}); err != nil {
		t.Fatalf("create other pair: %v", err)
	}

	// Borrar libera el par
	if err := repo.Delete(ctx, "a1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Create(ctx, adoptions.Adoption{ID: "a4", UserID: "u1", PetID: "p1"}); err != nil {
		t.Fatalf("expected pair to be free after delete: %v", err)
	}
}

func TestAdoptionRepo_InsertMany_RejectsRepeatedPair(t *testing.T) {
	repo := NewAdoptionRepo()
	ctx := context.Background()

	_, err := repo.InsertMany(ctx, []adoptions.Adoption{
		{UserID: "u1", PetID: "p1"},
		{UserID: "u2", PetID: "p1"},
		{UserID: "u1", PetID: "p1"},
	})
	if !errors.Is(err, adoptions.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("expected nothing written, got %d", n)
	}
}
