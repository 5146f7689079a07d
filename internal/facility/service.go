// AngelaMos | 2026
// service.go

package facility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kanriapp/masterdata-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*Facility, error) {
	facility, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("facility", id)
		}
		return nil, err
	}

	return facility, nil
}

func (s *Service) Create(
	ctx context.Context,
	input CreateFacilityInput,
) (*Facility, error) {
	facility := &Facility{
		ID:           uuid.New().String(),
		Code:         input.Code,
		Name:         input.Name,
		NameKana:     input.NameKana,
		Category:     input.Category,
		Status:       input.Status,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Country:      input.Country,
		Prefecture:   input.Prefecture,
		City:         input.City,
		AddressLine1: input.AddressLine1,
		PostalCode:   input.PostalCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		Capacity:     input.Capacity,
		Note:         input.Note,
		ImageURL:     input.ImageURL,
		IsIntegrated: input.IsIntegrated,
		DisplayOrder: input.DisplayOrder,
		BillingCode:  input.BillingCode,
		CreatedBy:    input.CreatedBy,
		UpdatedBy:    input.CreatedBy,
	}

	if err := s.repo.Create(ctx, facility); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateKeyError("facility", "code")
		}
		return nil, fmt.Errorf("create facility: %w", err)
	}

	return facility, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	patch FacilityPatch,
) (*Facility, error) {
	facility, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("facility", id)
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateKeyError("facility", "code")
		}
		return nil, fmt.Errorf("update facility: %w", err)
	}

	return facility, nil
}

// Deactivate retires a facility in place. There is no hard delete:
// facility rows are referenced by downstream records and only ever change
// status.
func (s *Service) Deactivate(
	ctx context.Context,
	id string,
	endDate *time.Time,
) (*Facility, error) {
	facility, err := s.repo.Deactivate(ctx, id, endDate)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("facility", id)
		}
		return nil, fmt.Errorf("deactivate facility: %w", err)
	}

	return facility, nil
}

// List returns the matching facilities. An empty spec deliberately takes
// the FindAll path instead of an all-wildcard search: "list all" and
// "search" have distinct default orderings.
func (s *Service) List(ctx context.Context, spec SearchSpec) ([]Facility, error) {
	if spec.IsEmpty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.Search(ctx, spec)
}
