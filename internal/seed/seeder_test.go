package seed

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/mocking"
	"pet-adoption-api/internal/platform/logger"

	"golang.org/x/crypto/bcrypt"
)

type stores struct {
	users     users.Repository
	pets      pets.Repository
	adoptions adoptions.Repository
}

func newStores() stores {
	return stores{
		users:     memory.NewUserRepo(),
		pets:      memory.NewPetRepo(),
		adoptions: memory.NewAdoptionRepo(),
	}
}

func newGenerator(seed uint64) *mocking.Generator {
	return mocking.New(mocking.NewSource(seed), mocking.Options{
		PasswordCost: bcrypt.MinCost,
		Now:          func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) },
	})
}

// failingPets delega en un repo real pero falla en InsertMany mientras failInsert sea true.
type failingPets struct {
	pets.Repository
	failInsert bool
}

func (f *failingPets) InsertMany(ctx context.Context, items []pets.Pet) ([]pets.Pet, error) {
	if f.failInsert && len(items) > 1 {
		return nil, errors.New("store unavailable")
	}
	return f.Repository.InsertMany(ctx, items)
}

func TestRun_Counts(t *testing.T) {
	st := newStores()
	s := New(st.users, st.pets, st.adoptions, newGenerator(1), logger.Nop())

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Fallback {
		t.Fatalf("unexpected fallback")
	}
	if res.InsertedUsers != 15 || res.InsertedPets != 25 || res.InsertedAdoptions != 12 {
		t.Fatalf("unexpected counts: %+v", res)
	}

	assertCardinality(t, st, 15, 25, 12)
}

func TestRun_OwnershipIsConsistent(t *testing.T) {
	st := newStores()
	s := New(st.users, st.pets, st.adoptions, newGenerator(2), logger.Nop())
	ctx := context.Background()

	if _, err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	allPets, _ := st.pets.List(ctx, pets.ListFilter{})
	owned := 0
	for _, p := range allPets {
		if p.OwnerID == "" {
			continue
		}
		owned++
		u, err := st.users.GetByID(ctx, p.OwnerID)
		if err != nil {
			t.Fatalf("owner %s not found: %v", p.OwnerID, err)
		}
		if !slices.Contains(u.Pets, p.ID) {
			t.Fatalf("pet %s missing from owner %s pet list %v", p.ID, u.ID, u.Pets)
		}
	}
	if owned != 15 {
		t.Fatalf("expected 15 owned pets, got %d", owned)
	}

	// y al revés: toda mascota listada por un usuario le pertenece
	allUsers, _ := st.users.List(ctx)
	for _, u := range allUsers {
		for _, petID := range u.Pets {
			p, err := st.pets.GetByID(ctx, petID)
			if err != nil || p.OwnerID != u.ID {
				t.Fatalf("user %s lists pet %s owned by %q", u.ID, petID, p.OwnerID)
			}
		}
	}
}

func TestRun_AdoptionsUniqueAndOverUnownedPets(t *testing.T) {
	st := newStores()
	s := New(st.users, st.pets, st.adoptions, newGenerator(3), logger.Nop())
	ctx := context.Background()

	if _, err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	items, _ := st.adoptions.List(ctx, adoptions.ListFilter{})
	pairs := map[string]bool{}
	for _, a := range items {
		if pairs[a.PairKey()] {
			t.Fatalf("duplicated pair %s", a.PairKey())
		}
		pairs[a.PairKey()] = true

		p, err := st.pets.GetByID(ctx, a.PetID)
		if err != nil {
			t.Fatalf("adoption references missing pet: %v", err)
		}
		if p.OwnerID != "" {
			t.Fatalf("adoption over owned pet %s", p.ID)
		}
		if _, err := st.users.GetByID(ctx, a.UserID); err != nil {
			t.Fatalf("adoption references missing user: %v", err)
		}
	}
}

func TestRun_TwiceIsNotCumulative(t *testing.T) {
	st := newStores()
	s := New(st.users, st.pets, st.adoptions, newGenerator(4), logger.Nop())
	ctx := context.Background()

	for i := range 2 {
		if _, err := s.Run(ctx); err != nil {
			t.Fatalf("Run #%d: %v", i+1, err)
		}
		assertCardinality(t, st, 15, 25, 12)
	}
}

func TestRun_PetInsertFailureFallsBack(t *testing.T) {
	st := newStores()
	fp := &failingPets{Repository: st.pets, failInsert: true}
	s := New(st.users, fp, st.adoptions, newGenerator(5), logger.Nop())
	ctx := context.Background()

	res, err := s.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Fallback || res.InsertedUsers != 1 || res.InsertedPets != 1 {
		t.Fatalf("expected fallback 1/1, got %+v", res)
	}

	nUsers, _ := st.users.Count(ctx)
	nPets, _ := st.pets.Count(ctx, pets.ListFilter{})
	if nUsers < 1 || nPets < 1 {
		t.Fatalf("store must never be empty after seeding: users=%d pets=%d", nUsers, nPets)
	}

	// sin rollback: los 15 usuarios ya persistidos siguen ahí
	if nUsers != 16 {
		t.Fatalf("expected 15 realistic + 1 fallback users, got %d", nUsers)
	}

	luna, _ := st.pets.List(ctx, pets.ListFilter{})
	if len(luna) != 1 || luna[0].Name != "Luna" {
		t.Fatalf("expected only the fallback pet, got %+v", luna)
	}
}

func TestTryRealistic_ReturnsErrorWithoutFallback(t *testing.T) {
	st := newStores()
	fp := &failingPets{Repository: st.pets, failInsert: true}
	s := New(st.users, fp, st.adoptions, newGenerator(6), logger.Nop())

	if _, err := s.TryRealistic(context.Background()); err == nil {
		t.Fatalf("expected error from TryRealistic")
	}
	if n, _ := st.pets.Count(context.Background(), pets.ListFilter{}); n != 0 {
		t.Fatalf("TryRealistic must not insert fallback data, got %d pets", n)
	}
}

func TestRun_ExhaustedPoolFallsBack(t *testing.T) {
	st := newStores()
	s := New(st.users, st.pets, st.adoptions, newGenerator(7), logger.Nop()).
		WithPlan(Plan{Users: 1, Pets: 2, OwnedPets: 1, Adoptions: 5})

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Fallback {
		t.Fatalf("expected fallback when the adoption pool is too small, got %+v", res)
	}
}

func assertCardinality(t *testing.T, st stores, wantUsers, wantPets, wantAdoptions int) {
	t.Helper()
	ctx := context.Background()

	nUsers, _ := st.users.Count(ctx)
	nPets, _ := st.pets.Count(ctx, pets.ListFilter{})
	nAdoptions, _ := st.adoptions.Count(ctx)
	if nUsers != wantUsers || nPets != wantPets || nAdoptions != wantAdoptions {
		t.Fatalf("expected %d/%d/%d, got %d/%d/%d", wantUsers, wantPets, wantAdoptions, nUsers, nPets, nAdoptions)
	}
}
