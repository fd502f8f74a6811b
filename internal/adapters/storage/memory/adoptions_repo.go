package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/adoptions"

	"github.com/google/uuid"
)

type adoptionEntry struct {
	a   adoptions.Adoption
	seq int
}

type adoptionRepo struct {
	mu     sync.RWMutex
	byID   map[string]adoptionEntry
	byPair map[string]string // user|pet -> id (índice único)
	seq    int
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byID:   make(map[string]adoptionEntry),
		byPair: make(map[string]string),
	}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	return r.insertLocked(a)
}

func (r *adoptionRepo) insertLocked(a adoptions.Adoption) error {
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adoption already exists")
	}
	if _, taken := r.byPair[a.PairKey()]; taken {
		return adoptions.ErrConflict
	}
	r.seq++
	r.byID[a.ID] = adoptionEntry{a: cloneAdoption(a), seq: r.seq}
	r.byPair[a.PairKey()] = a.ID
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return cloneAdoption(e.a), nil
}

func (r *adoptionRepo) List(ctx context.Context, filter adoptions.ListFilter) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]adoptionEntry, 0)
	for _, e := range r.byID {
		if filter.Matches(e.a) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]adoptions.Adoption, 0, len(entries))
	for _, e := range entries {
		out = append(out, cloneAdoption(e.a))
	}
	return out, nil
}

func (r *adoptionRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.byID[a.ID]
	if !exists {
		return adoptions.ErrNotFound
	}
	if a.PairKey() != e.a.PairKey() {
		if _, taken := r.byPair[a.PairKey()]; taken {
			return adoptions.ErrConflict
		}
		delete(r.byPair, e.a.PairKey())
		r.byPair[a.PairKey()] = a.ID
	}
	r.byID[a.ID] = adoptionEntry{a: cloneAdoption(a), seq: e.seq}
	return nil
}

func (r *adoptionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.byID[id]
	if !exists {
		return adoptions.ErrNotFound
	}
	delete(r.byPair, e.a.PairKey())
	delete(r.byID, id)
	return nil
}

func (r *adoptionRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

// InsertMany rechaza el lote completo si algún par ya existe o se repite.
func (r *adoptionRepo) InsertMany(ctx context.Context, items []adoptions.Adoption) ([]adoptions.Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, a := range items {
		if _, taken := r.byPair[a.PairKey()]; taken {
			return nil, adoptions.ErrConflict
		}
		if _, dup := seen[a.PairKey()]; dup {
			return nil, adoptions.ErrConflict
		}
		seen[a.PairKey()] = struct{}{}
	}

	out := make([]adoptions.Adoption, 0, len(items))
	for _, a := range items {
		if strings.TrimSpace(a.ID) == "" {
			a.ID = uuid.NewString()
		}
		if err := r.insertLocked(a); err != nil {
			return out, err
		}
		out = append(out, cloneAdoption(a))
	}
	return out, nil
}

func (r *adoptionRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]adoptionEntry)
	r.byPair = make(map[string]string)
	return nil
}

func cloneAdoption(a adoptions.Adoption) adoptions.Adoption {
	if a.AdoptionDate != nil {
		t := *a.AdoptionDate
		a.AdoptionDate = &t
	}
	return a
}
