// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kanriapp/masterdata-api/internal/core"
	"github.com/kanriapp/masterdata-api/internal/form"
)

// mockRepository records which repository operation the service chose.
type mockRepository struct {
	createErr  error
	updateErr  error
	deleteErr  error
	findErr    error
	findAllHit bool
	searchHit  bool
	searchSpec SearchSpec
	stored     User
}

func (m *mockRepository) Create(_ context.Context, _ *User) error {
	return m.createErr
}

func (m *mockRepository) FindByID(_ context.Context, _ string) (*User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	u := m.stored
	return &u, nil
}

func (m *mockRepository) FindAll(_ context.Context) ([]User, error) {
	m.findAllHit = true
	return []User{m.stored}, nil
}

func (m *mockRepository) Search(_ context.Context, spec SearchSpec) ([]User, error) {
	m.searchHit = true
	m.searchSpec = spec
	return []User{m.stored}, nil
}

func (m *mockRepository) Update(_ context.Context, _ string, _ UserPatch) (*User, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	u := m.stored
	return &u, nil
}

func (m *mockRepository) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

func TestService_List_EmptySpecTakesFindAllPath(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	if _, err := svc.List(context.Background(), SearchSpec{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	if !repo.findAllHit {
		t.Error("empty spec should call FindAll")
	}
	if repo.searchHit {
		t.Error("empty spec must not call Search")
	}
}

func TestService_List_AnyPredicateTakesSearchPath(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	spec := SearchSpec{Status: StatusActive}
	if _, err := svc.List(context.Background(), spec); err != nil {
		t.Fatalf("List: %v", err)
	}

	if !repo.searchHit {
		t.Error("non-empty spec should call Search")
	}
	if repo.findAllHit {
		t.Error("non-empty spec must not call FindAll")
	}
	if repo.searchSpec != spec {
		t.Errorf("spec passed through = %+v, want %+v", repo.searchSpec, spec)
	}
}

func TestService_Create_SetsIDAndAudit(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)

	actor := "admin-1"
	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:     "tanaka@example.com",
		Name:      "Tanaka Yuki",
		Role:      RoleAdmin,
		Status:    StatusActive,
		CreatedBy: &actor,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == "" {
		t.Error("service should assign an id")
	}
	if user.CreatedBy == nil || *user.CreatedBy != actor {
		t.Error("created_by should carry the acting user")
	}
	if user.UpdatedBy == nil || *user.UpdatedBy != actor {
		t.Error("updated_by should start as the creator")
	}
}

func TestService_Create_TranslatesDuplicateKey(t *testing.T) {
	repo := &mockRepository{
		createErr: fmt.Errorf("create user: %w", core.ErrDuplicateKey),
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email: "dup@example.com", Name: "Dup", Role: RoleUser, Status: StatusActive,
	})

	var appErr *core.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError", err)
	}
	if appErr.Status != 409 || appErr.Code != "DUPLICATE_KEY" {
		t.Errorf("got %d %s", appErr.Status, appErr.Code)
	}
	if appErr.Message != "a user with the same email already exists" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestService_Get_TranslatesNotFound(t *testing.T) {
	repo := &mockRepository{
		findErr: fmt.Errorf("get user: %w", core.ErrNotFound),
	}
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "missing-id")

	var appErr *core.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError", err)
	}
	if appErr.Status != 404 {
		t.Errorf("status = %d, want 404", appErr.Status)
	}
	if !errors.Is(err, core.ErrNotFound) {
		t.Error("AppError should unwrap to ErrNotFound")
	}
}

func TestService_Update_TranslatesErrors(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
	}{
		{"not found", fmt.Errorf("update user: %w", core.ErrNotFound), 404},
		{"duplicate", fmt.Errorf("update user: %w", core.ErrDuplicateKey), 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockRepository{updateErr: tt.repoErr})

			patch := UserPatch{Name: form.Set("New Name")}
			_, err := svc.Update(context.Background(), "u1", patch)

			var appErr *core.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("err = %v, want AppError", err)
			}
			if appErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", appErr.Status, tt.wantStatus)
			}
		})
	}
}

func TestService_Delete_TranslatesNotFound(t *testing.T) {
	svc := NewService(&mockRepository{
		deleteErr: fmt.Errorf("delete user: %w", core.ErrNotFound),
	})

	err := svc.Delete(context.Background(), "missing-id")

	var appErr *core.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want AppError", err)
	}
	if appErr.Status != 404 {
		t.Errorf("status = %d, want 404", appErr.Status)
	}
}
