package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/users"

	"github.com/google/uuid"
)

type userEntry struct {
	u   users.User
	seq int
}

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]userEntry
	byEmail map[string]string // email -> id
	seq     int
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:    make(map[string]userEntry),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	return r.insertLocked(u)
}

func (r *userRepo) insertLocked(u users.User) error {
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	key := emailKey(u.Email)
	if _, taken := r.byEmail[key]; taken {
		return users.ErrConflict
	}
	r.seq++
	r.byID[u.ID] = userEntry{u: cloneUser(u), seq: r.seq}
	r.byEmail[key] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return cloneUser(e.u), nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]userEntry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	// Orden de inserción
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]users.User, 0, len(entries))
	for _, e := range entries {
		out = append(out, cloneUser(e.u))
	}
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.byID[u.ID]
	if !exists {
		return users.ErrNotFound
	}

	oldKey := emailKey(e.u.Email)
	newKey := emailKey(u.Email)
	if oldKey != newKey {
		if _, taken := r.byEmail[newKey]; taken {
			return users.ErrConflict
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = u.ID
	}

	r.byID[u.ID] = userEntry{u: cloneUser(u), seq: e.seq}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.byID[id]
	if !exists {
		return users.ErrNotFound
	}
	delete(r.byEmail, emailKey(e.u.Email))
	delete(r.byID, id)
	return nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

// InsertMany valida todo el lote antes de escribir: o entra completo o no entra nada.
func (r *userRepo) InsertMany(ctx context.Context, items []users.User) ([]users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, u := range items {
		key := emailKey(u.Email)
		if _, taken := r.byEmail[key]; taken {
			return nil, users.ErrConflict
		}
		if _, dup := seen[key]; dup {
			return nil, users.ErrConflict
		}
		seen[key] = struct{}{}
	}

	out := make([]users.User, 0, len(items))
	for _, u := range items {
		if strings.TrimSpace(u.ID) == "" {
			u.ID = uuid.NewString()
		}
		if err := r.insertLocked(u); err != nil {
			return out, err
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *userRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]userEntry)
	r.byEmail = make(map[string]string)
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u users.User) users.User {
	if u.Pets != nil {
		u.Pets = append(make([]string, 0, len(u.Pets)), u.Pets...)
	}
	return u
}
