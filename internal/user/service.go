// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kanriapp/masterdata-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user", id)
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Create(
	ctx context.Context,
	input CreateUserInput,
) (*User, error) {
	user := &User{
		ID:          uuid.New().String(),
		Email:       input.Email,
		Name:        input.Name,
		NameKana:    input.NameKana,
		Role:        input.Role,
		Status:      input.Status,
		Department:  input.Department,
		Title:       input.Title,
		PhoneNumber: input.PhoneNumber,
		Image:       input.Image,
		Note:        input.Note,
		MFAEnabled:  input.MFAEnabled,
		IsLocked:    input.IsLocked,
		CreatedBy:   input.CreatedBy,
		UpdatedBy:   input.CreatedBy,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateKeyError("user", "email")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	patch UserPatch,
) (*User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("user", id)
		}
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateKeyError("user", "email")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("user", id)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

// List returns the matching users. An empty spec deliberately takes the
// FindAll path instead of an all-wildcard search: "list all" and "search"
// have distinct default orderings.
func (s *Service) List(ctx context.Context, spec SearchSpec) ([]User, error) {
	if spec.IsEmpty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.Search(ctx, spec)
}
