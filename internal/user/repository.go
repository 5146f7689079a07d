// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kanriapp/masterdata-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Search(ctx context.Context, spec SearchSpec) ([]User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id string) error
}

const userColumns = `id, email, name, name_kana, role, status, department,
	       title, phone_number, image, note, last_login_at, mfa_enabled,
	       is_locked, created_by, updated_by, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, name, name_kana, role, status,
		                   department, title, phone_number, image, note,
		                   mfa_enabled, is_locked, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Email,
		user.Name,
		user.NameKana,
		user.Role,
		user.Status,
		user.Department,
		user.Title,
		user.PhoneNumber,
		user.Image,
		user.Note,
		user.MFAEnabled,
		user.IsLocked,
		user.CreatedBy,
		user.UpdatedBy,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = $1`, userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// FindAll returns the unfiltered collection in the console's default
// order, newest first.
func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		ORDER BY created_at DESC`, userColumns)

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) Search(ctx context.Context, spec SearchSpec) ([]User, error) {
	conditions, args := searchConditions(spec)

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC`,
		userColumns, strings.Join(conditions, " AND "))

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	return users, nil
}

// searchConditions pushes SearchSpec.Matches down to SQL. Keyword scans
// name, email and department; role and status are exact matches.
func searchConditions(spec SearchSpec) ([]string, []any) {
	conditions := []string{"TRUE"}
	var args []any
	argIdx := 1

	if keyword := strings.TrimSpace(spec.Keyword); keyword != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR department ILIKE $%d)",
			argIdx, argIdx, argIdx))
		args = append(args, "%"+escapeLike(keyword)+"%")
		argIdx++
	}

	if spec.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, spec.Role)
		argIdx++
	}

	if spec.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, spec.Status)
		argIdx++
	}

	return conditions, args
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	patch UserPatch,
) (*User, error) {
	sets, args := patchAssignments(patch)
	if len(sets) == 0 {
		// Validation rejects empty patches before they reach here.
		return nil, fmt.Errorf("update user: empty patch: %w", core.ErrInvalidInput)
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`,
		strings.Join(sets, ", "), userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, append([]any{id}, args...)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return &user, nil
}

//nolint:cyclop // one branch per patchable column
func patchAssignments(patch UserPatch) ([]string, []any) {
	var sets []string
	var args []any
	argIdx := 2

	assign := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}
	setNull := func(column string) {
		sets = append(sets, column+" = NULL")
	}

	if v, ok := patch.Name.Get(); ok {
		assign("name", v)
	}
	if v, ok := patch.NameKana.Get(); ok {
		assign("name_kana", v)
	} else if patch.NameKana.IsClear() {
		setNull("name_kana")
	}
	if v, ok := patch.Role.Get(); ok {
		assign("role", v)
	}
	if v, ok := patch.Status.Get(); ok {
		assign("status", v)
	}
	if v, ok := patch.Department.Get(); ok {
		assign("department", v)
	} else if patch.Department.IsClear() {
		setNull("department")
	}
	if v, ok := patch.Title.Get(); ok {
		assign("title", v)
	} else if patch.Title.IsClear() {
		setNull("title")
	}
	if v, ok := patch.PhoneNumber.Get(); ok {
		assign("phone_number", v)
	} else if patch.PhoneNumber.IsClear() {
		setNull("phone_number")
	}
	if v, ok := patch.Image.Get(); ok {
		assign("image", v)
	} else if patch.Image.IsClear() {
		setNull("image")
	}
	if v, ok := patch.Note.Get(); ok {
		assign("note", v)
	} else if patch.Note.IsClear() {
		setNull("note")
	}
	if v, ok := patch.MFAEnabled.Get(); ok {
		assign("mfa_enabled", v)
	}
	if v, ok := patch.IsLocked.Get(); ok {
		assign("is_locked", v)
	}
	if patch.UpdatedBy != nil {
		assign("updated_by", *patch.UpdatedBy)
	}

	return sets, args
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
