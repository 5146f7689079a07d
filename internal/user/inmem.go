// AngelaMos | 2026
// inmem.go

package user

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kanriapp/masterdata-api/internal/core"
	"github.com/kanriapp/masterdata-api/internal/form"
)

// InMemoryRepository is the executable reference for the repository
// contract. The search path reuses SearchSpec.Matches, so equivalence
// tests can hold the SQL pushdown to the same semantics.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
	seq   map[string]int
	next  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]User),
		seq:   make(map[string]int),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Create(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = *user
	r.next++
	r.seq[user.ID] = r.next

	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}

	return &user, nil
}

func (r *InMemoryRepository) FindAll(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNewestFirst(), nil
}

func (r *InMemoryRepository) Search(
	_ context.Context,
	spec SearchSpec,
) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Filter(r.sortedNewestFirst(), spec), nil
}

func (r *InMemoryRepository) Update(
	_ context.Context,
	id string,
	patch UserPatch,
) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}

	applyPatch(&user, patch)
	user.UpdatedAt = time.Now().UTC()
	r.users[id] = user

	return &user, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	delete(r.users, id)
	delete(r.seq, id)
	return nil
}

func (r *InMemoryRepository) sortedNewestFirst() []User {
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	return out
}

func applyPatch(u *User, patch UserPatch) {
	if v, ok := patch.Name.Get(); ok {
		u.Name = v
	}
	setNullable(&u.NameKana, patch.NameKana)
	if v, ok := patch.Role.Get(); ok {
		u.Role = v
	}
	if v, ok := patch.Status.Get(); ok {
		u.Status = v
	}
	setNullable(&u.Department, patch.Department)
	setNullable(&u.Title, patch.Title)
	setNullable(&u.PhoneNumber, patch.PhoneNumber)
	setNullable(&u.Image, patch.Image)
	setNullable(&u.Note, patch.Note)
	if v, ok := patch.MFAEnabled.Get(); ok {
		u.MFAEnabled = v
	}
	if v, ok := patch.IsLocked.Get(); ok {
		u.IsLocked = v
	}
	if patch.UpdatedBy != nil {
		u.UpdatedBy = patch.UpdatedBy
	}
}

func setNullable(dst **string, f form.Field[string]) {
	if v, ok := f.Get(); ok {
		*dst = &v
		return
	}
	if f.IsClear() {
		*dst = nil
	}
}
