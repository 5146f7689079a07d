// AngelaMos | 2026
// inmem.go

package facility

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
	mu         sync.RWMutex
	facilities map[string]Facility
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		facilities: make(map[string]Facility),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Create(_ context.Context, facility *Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.facilities {
		if strings.EqualFold(existing.Code, facility.Code) {
			return fmt.Errorf("create facility: %w", core.ErrDuplicateKey)
		}
	}

	now := time.Now().UTC()
	facility.CreatedAt = now
	facility.UpdatedAt = now

	r.facilities[facility.ID] = *facility
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	facility, ok := r.facilities[id]
	if !ok {
		return nil, fmt.Errorf("get facility: %w", core.ErrNotFound)
	}

	return &facility, nil
}

func (r *InMemoryRepository) FindAll(_ context.Context) ([]Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.collect()
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].DisplayOrder, out[j].DisplayOrder
		switch {
		case oi != nil && oj != nil && *oi != *oj:
			return *oi < *oj
		case oi != nil && oj == nil:
			return true
		case oi == nil && oj != nil:
			return false
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (r *InMemoryRepository) Search(
	_ context.Context,
	spec SearchSpec,
) ([]Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.collect()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return Filter(out, spec), nil
}

func (r *InMemoryRepository) Update(
	_ context.Context,
	id string,
	patch FacilityPatch,
) (*Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	facility, ok := r.facilities[id]
	if !ok {
		return nil, fmt.Errorf("update facility: %w", core.ErrNotFound)
	}

	if code, ok := patch.Code.Get(); ok && !strings.EqualFold(code, facility.Code) {
		for _, existing := range r.facilities {
			if strings.EqualFold(existing.Code, code) {
				return nil, fmt.Errorf("update facility: %w", core.ErrDuplicateKey)
			}
		}
	}

	applyPatch(&facility, patch)
	facility.UpdatedAt = time.Now().UTC()
	r.facilities[id] = facility

	return &facility, nil
}

func (r *InMemoryRepository) Deactivate(
	_ context.Context,
	id string,
	endDate *time.Time,
) (*Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	facility, ok := r.facilities[id]
	if !ok {
		return nil, fmt.Errorf("deactivate facility: %w", core.ErrNotFound)
	}

	facility.Status = StatusInactive
	facility.EndDate = endDate
	facility.UpdatedAt = time.Now().UTC()
	r.facilities[id] = facility

	return &facility, nil
}

func (r *InMemoryRepository) collect() []Facility {
	out := make([]Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		out = append(out, f)
	}
	return out
}

//nolint:cyclop // one branch per patchable column
func applyPatch(f *Facility, patch FacilityPatch) {
	if v, ok := patch.Code.Get(); ok {
		f.Code = v
	}
	if v, ok := patch.Name.Get(); ok {
		f.Name = v
	}
	setNullable(&f.NameKana, patch.NameKana)
	if v, ok := patch.Category.Get(); ok {
		f.Category = v
	}
	if v, ok := patch.Status.Get(); ok {
		f.Status = v
	}
	setNullable(&f.StartDate, patch.StartDate)
	setNullable(&f.EndDate, patch.EndDate)
	if v, ok := patch.Country.Get(); ok {
		f.Country = v
	}
	setNullable(&f.Prefecture, patch.Prefecture)
	setNullable(&f.City, patch.City)
	setNullable(&f.AddressLine1, patch.AddressLine1)
	setNullable(&f.PostalCode, patch.PostalCode)
	setNullable(&f.Latitude, patch.Latitude)
	setNullable(&f.Longitude, patch.Longitude)
	setNullable(&f.PhoneNumber, patch.PhoneNumber)
	setNullable(&f.Email, patch.Email)
	setNullable(&f.ContactName, patch.ContactName)
	setNullable(&f.ContactPhone, patch.ContactPhone)
	setNullable(&f.ContactEmail, patch.ContactEmail)
	setNullable(&f.Capacity, patch.Capacity)
	setNullable(&f.Note, patch.Note)
	setNullable(&f.ImageURL, patch.ImageURL)
	if v, ok := patch.IsIntegrated.Get(); ok {
		f.IsIntegrated = v
	}
	setNullable(&f.DisplayOrder, patch.DisplayOrder)
	setNullable(&f.BillingCode, patch.BillingCode)
	if patch.UpdatedBy != nil {
		f.UpdatedBy = patch.UpdatedBy
	}
}

func setNullable[T any](dst **T, f form.Field[T]) {
	if v, ok := f.Get(); ok {
		*dst = &v
		return
	}
	if f.IsClear() {
		*dst = nil
	}
}
