package mocking

import (
	"errors"
	"net/mail"
	"reflect"
	"slices"
	"testing"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *Generator {
	return New(NewSource(seed), Options{
		PasswordCost: bcrypt.MinCost,
		Now:          func() time.Time { return fixedNow },
	})
}

func TestUsers_CountEmailAndRole(t *testing.T) {
	g := newTestGenerator(1)

	for _, n := range []int{0, 1, 15, 60} {
		got := g.Users(n)
		if len(got) != n {
			t.Fatalf("Users(%d) returned %d", n, len(got))
		}
		for _, u := range got {
			if _, err := mail.ParseAddress(u.Email); err != nil {
				t.Fatalf("invalid email %q: %v", u.Email, err)
			}
			if u.Role != users.RoleUser && u.Role != users.RoleAdmin {
				t.Fatalf("invalid role %q", u.Role)
			}
			if u.CreatedAt.After(fixedNow) || u.CreatedAt.Before(fixedNow.AddDate(-1, 0, -1)) {
				t.Fatalf("createdAt outside the past year: %v", u.CreatedAt)
			}
		}
	}
}

func TestUsers_PasswordIsHashOfPlaceholder(t *testing.T) {
	g := newTestGenerator(2)
	u := g.User()

	if u.Password == DefaultPassword {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(DefaultPassword)); err != nil {
		t.Fatalf("hash does not match placeholder: %v", err)
	}
}

func TestPets_FieldInvariants(t *testing.T) {
	g := newTestGenerator(3)

	for _, n := range []int{0, 1, 25, 200} {
		got := g.Pets(n, "")
		if len(got) != n {
			t.Fatalf("Pets(%d) returned %d", n, len(got))
		}
		for _, p := range got {
			if !slices.Contains(GeneratedSpecies, p.Species) {
				t.Fatalf("unexpected species %q", p.Species)
			}
			if p.Age < pets.MinAge || p.Age > pets.MaxAge {
				t.Fatalf("age out of range: %v", p.Age)
			}
			if p.Weight < pets.MinWeight || p.Weight > pets.MaxWeight {
				t.Fatalf("weight out of range: %v", p.Weight)
			}
			if !slices.Contains(generatedSizes, p.Size) {
				t.Fatalf("unexpected size %q", p.Size)
			}
			if len(p.Personality) < 1 || len(p.Personality) > 3 {
				t.Fatalf("expected 1-3 traits, got %v", p.Personality)
			}
			if p.OwnerID != "" {
				t.Fatalf("expected no owner, got %q", p.OwnerID)
			}
			if p.MicrochipID != "" && len(p.MicrochipID) != 11 {
				t.Fatalf("bad microchip %q", p.MicrochipID)
			}
			if len(p.MedicalHistory) > 1 {
				t.Fatalf("expected at most one medical record")
			}
			if p.Location.Country != pets.DefaultCountry {
				t.Fatalf("unexpected country %q", p.Location.Country)
			}
			if p.HealthStatus == pets.HealthSpecialCare || p.AdoptionStatus == pets.AdoptionAdopted {
				t.Fatalf("status outside declared distributions: %q / %q", p.HealthStatus, p.AdoptionStatus)
			}
		}
	}
}

func TestPets_SharedOwner(t *testing.T) {
	g := newTestGenerator(4)
	for _, p := range g.Pets(10, "user-1") {
		if p.OwnerID != "user-1" {
			t.Fatalf("expected shared owner, got %q", p.OwnerID)
		}
	}
}

func TestPet_OneThousandDrawsOnlyGeneratedSpecies(t *testing.T) {
	g := newTestGenerator(5)

	seen := map[pets.Species]int{}
	for range 1000 {
		p := g.Pets(1, "")[0]
		seen[p.Species]++
	}

	for s := range seen {
		if !slices.Contains(GeneratedSpecies, s) {
			t.Fatalf("species %q must never be generated", s)
		}
	}
	if len(seen) != len(GeneratedSpecies) {
		t.Fatalf("expected all %d generated species to appear, got %v", len(GeneratedSpecies), seen)
	}
}

func TestGenerator_SameSeedSameOutput(t *testing.T) {
	a := newTestGenerator(99).Pets(20, "")
	b := newTestGenerator(99).Pets(20, "")

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed must produce the same pets")
	}

	c := newTestGenerator(100).Pets(20, "")
	if reflect.DeepEqual(a, c) {
		t.Fatalf("different seeds produced identical pets")
	}
}

func TestAdoptions_UniquePairsAndCompletedDate(t *testing.T) {
	g := newTestGenerator(6)

	userIDs := []string{"u1", "u2", "u3"}
	petIDs := []string{"p1", "p2", "p3", "p4"}

	for _, n := range []int{1, 5, 12} {
		got, err := g.Adoptions(n, userIDs, petIDs)
		if err != nil {
			t.Fatalf("Adoptions(%d): %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("expected %d adoptions, got %d", n, len(got))
		}

		pairs := map[string]bool{}
		for _, a := range got {
			if pairs[a.PairKey()] {
				t.Fatalf("repeated pair %s", a.PairKey())
			}
			pairs[a.PairKey()] = true

			if !slices.Contains(userIDs, a.UserID) || !slices.Contains(petIDs, a.PetID) {
				t.Fatalf("reference outside pools: %s", a.PairKey())
			}
			if (a.Status == adoptions.StatusCompleted) != (a.AdoptionDate != nil) {
				t.Fatalf("adoptionDate must be set only when completed: %+v", a)
			}
			if a.Notes == "" {
				t.Fatalf("expected templated notes")
			}
		}
	}
}

func TestAdoption_NotesPerStatus(t *testing.T) {
	want := map[adoptions.Status]string{
		adoptions.StatusPending:   "Solicitud de adopción en proceso",
		adoptions.StatusApproved:  "Solicitud de adopción aprobada",
		adoptions.StatusRejected:  "Solicitud de adopción rechazada",
		adoptions.StatusCompleted: "Solicitud de adopción completada",
	}
	if !reflect.DeepEqual(adoptionNotes, want) {
		t.Fatalf("unexpected notes table: %v", adoptionNotes)
	}

	g := newTestGenerator(8)
	seen := map[adoptions.Status]bool{}
	for range 200 {
		a := g.Adoption("u1", "p1")
		if a.Notes != want[a.Status] {
			t.Fatalf("status %s: expected %q, got %q", a.Status, want[a.Status], a.Notes)
		}
		seen[a.Status] = true
	}
	if len(seen) != len(want) {
		t.Fatalf("expected every status in 200 draws, got %v", seen)
	}
}

func TestAdoptions_PoolErrors(t *testing.T) {
	g := newTestGenerator(7)

	if _, err := g.Adoptions(1, nil, []string{"p1"}); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if _, err := g.Adoptions(3, []string{"u1"}, []string{"p1", "p2"}); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}
	// los duplicados del pool no cuentan como pares distintos
	if _, err := g.Adoptions(2, []string{"u1", "u1"}, []string{"p1"}); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted with duplicated pool, got %v", err)
	}

	got, err := g.Adoptions(0, nil, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("Adoptions(0) should be empty, got %v %v", got, err)
	}
}

func TestFallback_FixedValues(t *testing.T) {
	ds := newTestGenerator(8).Fallback()

	if len(ds.Users) != 1 || len(ds.Pets) != 1 {
		t.Fatalf("expected 1 user and 1 pet, got %d/%d", len(ds.Users), len(ds.Pets))
	}

	u := ds.Users[0]
	if u.Email != "maria.gonzalez@email.com" || u.Role != users.RoleAdmin {
		t.Fatalf("unexpected fallback user: %+v", u)
	}

	p := ds.Pets[0]
	if p.Name != "Luna" || p.Species != pets.SpeciesPerro || p.Weight != 28.5 || p.Size != pets.SizeLarge {
		t.Fatalf("unexpected fallback pet: %+v", p)
	}
	if p.OwnerID != "" {
		t.Fatalf("fallback pet must have no owner")
	}
}
