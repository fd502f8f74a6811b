package adoptions

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Adoption
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Adoption{}}
}

func (r *testRepo) Create(ctx context.Context, a Adoption) error {
	for _, other := range r.byID {
		if other.PairKey() == a.PairKey() {
			return ErrConflict
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Adoption, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adoption{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Adoption, error) {
	out := make([]Adoption, 0)
	for _, a := range r.byID {
		if filter.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Adoption) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) { return len(r.byID), nil }

func (r *testRepo) InsertMany(ctx context.Context, items []Adoption) ([]Adoption, error) {
	for _, a := range items {
		if err := r.Create(ctx, a); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	r.byID = map[string]Adoption{}
	return nil
}

// -------------------------
// Helpers
// -------------------------

var testNow = time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC)

func testLookups() Lookups {
	return Lookups{
		User: func(ctx context.Context, id string) (UserSummary, bool) {
			if id != "u1" && id != "u2" {
				return UserSummary{}, false
			}
			return UserSummary{ID: id, FirstName: "Ana", LastName: "López", Email: id + "@email.com"}, true
		},
		Pet: func(ctx context.Context, id string) (PetSummary, bool) {
			if id != "p1" {
				return PetSummary{}, false
			}
			return PetSummary{ID: id, Name: "Luna", Species: "perro"}, true
		},
	}
}

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo, testLookups())
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func statusPtr(s Status) *Status { return &s }

// -------------------------
// Tests
// -------------------------

func TestCreate_DefaultsToPending(t *testing.T) {
	svc, _ := newTestService(t)

	a, err := svc.Create(context.Background(), CreateInput{UserID: "u1", PetID: "p1", Notes: " quiere adoptar "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == "" || a.Status != StatusPending {
		t.Fatalf("unexpected adoption: %+v", a)
	}
	if a.AdoptionDate != nil {
		t.Fatalf("pending adoptions have no adoption date")
	}
	if a.Notes != "quiere adoptar" {
		t.Fatalf("expected trimmed notes, got %q", a.Notes)
	}
}

func TestCreate_ValidatesReferences(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{UserID: "", PetID: "p1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{UserID: "ghost", PetID: "p1"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{UserID: "u1", PetID: "ghost"}); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestCreate_DuplicatePairConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{UserID: "u1", PetID: "p1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{UserID: "u1", PetID: "p1"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{UserID: "u2", PetID: "p1"}); err != nil {
		t.Fatalf("another user may request the same pet: %v", err)
	}
}

func TestUpdate_CompletedStampsAndClearsDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{UserID: "u1", PetID: "p1"})

	done, err := svc.Update(ctx, a.ID, UpdateInput{Status: statusPtr(StatusCompleted)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if done.AdoptionDate == nil || !done.AdoptionDate.Equal(testNow) {
		t.Fatalf("expected adoption date stamped, got %v", done.AdoptionDate)
	}

	back, err := svc.Update(ctx, a.ID, UpdateInput{Status: statusPtr(StatusApproved)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if back.AdoptionDate != nil {
		t.Fatalf("leaving completed must clear adoption date")
	}

	if _, err := svc.Update(ctx, a.ID, UpdateInput{Status: statusPtr("cancelled")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPopulate_DanglingReferencesKeepID(t *testing.T) {
	svc, _ := newTestService(t)

	u, p := svc.Populate(context.Background(), Adoption{UserID: "u1", PetID: "gone"})
	if u.FirstName != "Ana" {
		t.Fatalf("expected populated user, got %+v", u)
	}
	if p.ID != "gone" || p.Name != "" {
		t.Fatalf("expected id-only pet summary, got %+v", p)
	}
}

func TestAllStatuses(t *testing.T) {
	all := AllStatuses()
	if len(all) != 4 {
		t.Fatalf("expected 4 statuses, got %d", len(all))
	}
	for _, s := range all {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if Status("").Valid() {
		t.Fatalf("empty status must be invalid")
	}
}
