package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/pets"

	"github.com/google/uuid"
)

type petEntry struct {
	p   pets.Pet
	seq int
}

type petRepo struct {
	mu          sync.RWMutex
	byID        map[string]petEntry
	byMicrochip map[string]string // microchip -> id
	seq         int
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:        make(map[string]petEntry),
		byMicrochip: make(map[string]string),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	return r.insertLocked(p)
}

func (r *petRepo) insertLocked(p pets.Pet) error {
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	if p.MicrochipID != "" {
		if _, taken := r.byMicrochip[p.MicrochipID]; taken {
			return pets.ErrConflict
		}
		r.byMicrochip[p.MicrochipID] = p.ID
	}
	r.seq++
	r.byID[p.ID] = petEntry{p: clonePet(p), seq: r.seq}
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(e.p), nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]petEntry, 0)
	for _, e := range r.byID {
		if filter.Matches(e.p) {
			entries = append(entries, e)
		}
	}

	// Orden estable por created_at (asc o desc), desempate por inserción.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].p.CreatedAt, entries[j].p.CreatedAt
		if !a.Equal(b) {
			if filter.NewestFirst {
				return a.After(b)
			}
			return a.Before(b)
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]pets.Pet, 0, len(entries))
	for _, e := range entries {
		out = append(out, clonePet(e.p))
	}
	return out, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	e, exists := r.byID[p.ID]
	if !exists {
		return pets.ErrNotFound
	}

	if p.MicrochipID != e.p.MicrochipID {
		if p.MicrochipID != "" {
			if owner, taken := r.byMicrochip[p.MicrochipID]; taken && owner != p.ID {
				return pets.ErrConflict
			}
			r.byMicrochip[p.MicrochipID] = p.ID
		}
		if e.p.MicrochipID != "" {
			delete(r.byMicrochip, e.p.MicrochipID)
		}
	}

	r.byID[p.ID] = petEntry{p: clonePet(p), seq: e.seq}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.byID[id]
	if !exists {
		return pets.ErrNotFound
	}
	if e.p.MicrochipID != "" {
		delete(r.byMicrochip, e.p.MicrochipID)
	}
	delete(r.byID, id)
	return nil
}

func (r *petRepo) Count(ctx context.Context, filter pets.ListFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, e := range r.byID {
		if filter.Matches(e.p) {
			n++
		}
	}
	return n, nil
}

func (r *petRepo) CountBySpecies(ctx context.Context) ([]pets.SpeciesCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[pets.Species]int{}
	for _, e := range r.byID {
		counts[e.p.Species]++
	}

	out := make([]pets.SpeciesCount, 0, len(counts))
	for s, n := range counts {
		out = append(out, pets.SpeciesCount{Species: s, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Species < out[j].Species
	})
	return out, nil
}

// InsertMany valida todo el lote antes de escribir.
func (r *petRepo) InsertMany(ctx context.Context, items []pets.Pet) ([]pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[string]struct{}{}
	for _, p := range items {
		if p.MicrochipID == "" {
			continue
		}
		if _, taken := r.byMicrochip[p.MicrochipID]; taken {
			return nil, pets.ErrConflict
		}
		if _, dup := seen[p.MicrochipID]; dup {
			return nil, pets.ErrConflict
		}
		seen[p.MicrochipID] = struct{}{}
	}

	out := make([]pets.Pet, 0, len(items))
	for _, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.NewString()
		}
		if err := r.insertLocked(p); err != nil {
			return out, err
		}
		out = append(out, clonePet(p))
	}
	return out, nil
}

func (r *petRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]petEntry)
	r.byMicrochip = make(map[string]string)
	return nil
}

func clonePet(p pets.Pet) pets.Pet {
	if p.Personality != nil {
		p.Personality = append(make([]pets.Personality, 0, len(p.Personality)), p.Personality...)
	}
	if p.MedicalHistory != nil {
		p.MedicalHistory = append(make([]pets.MedicalRecord, 0, len(p.MedicalHistory)), p.MedicalHistory...)
	}
	if p.Characteristics != nil {
		c := *p.Characteristics
		p.Characteristics = &c
	}
	if p.RescueDate != nil {
		t := *p.RescueDate
		p.RescueDate = &t
	}
	return p
}
