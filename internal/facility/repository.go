// AngelaMos | 2026
// repository.go

package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kanriapp/masterdata-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, facility *Facility) error
	FindByID(ctx context.Context, id string) (*Facility, error)
	FindAll(ctx context.Context) ([]Facility, error)
	Search(ctx context.Context, spec SearchSpec) ([]Facility, error)
	Update(ctx context.Context, id string, patch FacilityPatch) (*Facility, error)
	Deactivate(ctx context.Context, id string, endDate *time.Time) (*Facility, error)
}

const facilityColumns = `id, code, name, name_kana, category, status,
	       start_date, end_date, country, prefecture, city, address_line1,
	       postal_code, latitude, longitude, phone_number, email,
	       contact_name, contact_phone, contact_email, capacity, note,
	       image_url, synced_at, is_integrated, display_order, billing_code,
	       created_by, updated_by, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, facility *Facility) error {
	query := `
		INSERT INTO facilities (id, code, name, name_kana, category, status,
		                        start_date, end_date, country, prefecture,
		                        city, address_line1, postal_code, latitude,
		                        longitude, phone_number, email, contact_name,
		                        contact_phone, contact_email, capacity, note,
		                        image_url, is_integrated, display_order,
		                        billing_code, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
		        $27, $28)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, facility, query,
		facility.ID,
		facility.Code,
		facility.Name,
		facility.NameKana,
		facility.Category,
		facility.Status,
		facility.StartDate,
		facility.EndDate,
		facility.Country,
		facility.Prefecture,
		facility.City,
		facility.AddressLine1,
		facility.PostalCode,
		facility.Latitude,
		facility.Longitude,
		facility.PhoneNumber,
		facility.Email,
		facility.ContactName,
		facility.ContactPhone,
		facility.ContactEmail,
		facility.Capacity,
		facility.Note,
		facility.ImageURL,
		facility.IsIntegrated,
		facility.DisplayOrder,
		facility.BillingCode,
		facility.CreatedBy,
		facility.UpdatedBy,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create facility: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create facility: %w", err)
	}

	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Facility, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM facilities
		WHERE id = $1`, facilityColumns)

	var facility Facility
	err := r.db.GetContext(ctx, &facility, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get facility: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	return &facility, nil
}

// FindAll returns the unfiltered collection in the console's default
// order: explicit display order first, then code.
func (r *repository) FindAll(ctx context.Context) ([]Facility, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM facilities
		ORDER BY display_order ASC NULLS LAST, code ASC`, facilityColumns)

	var facilities []Facility
	if err := r.db.SelectContext(ctx, &facilities, query); err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	return facilities, nil
}

func (r *repository) Search(ctx context.Context, spec SearchSpec) ([]Facility, error) {
	conditions, args := searchConditions(spec)

	query := fmt.Sprintf(`
		SELECT %s
		FROM facilities
		WHERE %s
		ORDER BY code ASC`,
		facilityColumns, strings.Join(conditions, " AND "))

	var facilities []Facility
	if err := r.db.SelectContext(ctx, &facilities, query, args...); err != nil {
		return nil, fmt.Errorf("search facilities: %w", err)
	}

	return facilities, nil
}

// searchConditions pushes SearchSpec.Matches down to SQL. Keyword scans
// name, code and the address fields; category and status are exact matches.
func searchConditions(spec SearchSpec) ([]string, []any) {
	conditions := []string{"TRUE"}
	var args []any
	argIdx := 1

	if keyword := strings.TrimSpace(spec.Keyword); keyword != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR code ILIKE $%d OR prefecture ILIKE $%d"+
				" OR city ILIKE $%d OR address_line1 ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+escapeLike(keyword)+"%")
		argIdx++
	}

	if spec.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, spec.Category)
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
	patch FacilityPatch,
) (*Facility, error) {
	sets, args := patchAssignments(patch)
	if len(sets) == 0 {
		// Validation rejects empty patches before they reach here.
		return nil, fmt.Errorf("update facility: empty patch: %w", core.ErrInvalidInput)
	}

	query := fmt.Sprintf(`
		UPDATE facilities
		SET %s, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`,
		strings.Join(sets, ", "), facilityColumns)

	var facility Facility
	err := r.db.GetContext(ctx, &facility, query, append([]any{id}, args...)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update facility: %w", core.ErrNotFound)
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("update facility: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("update facility: %w", err)
	}

	return &facility, nil
}

//nolint:cyclop,funlen // one branch per patchable column
func patchAssignments(patch FacilityPatch) ([]string, []any) {
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
	stringCol := func(column string, f interface {
		Get() (string, bool)
		IsClear() bool
	}) {
		if v, ok := f.Get(); ok {
			assign(column, v)
		} else if f.IsClear() {
			setNull(column)
		}
	}

	if v, ok := patch.Code.Get(); ok {
		assign("code", v)
	}
	if v, ok := patch.Name.Get(); ok {
		assign("name", v)
	}
	stringCol("name_kana", patch.NameKana)
	if v, ok := patch.Category.Get(); ok {
		assign("category", v)
	}
	if v, ok := patch.Status.Get(); ok {
		assign("status", v)
	}
	if v, ok := patch.StartDate.Get(); ok {
		assign("start_date", v)
	} else if patch.StartDate.IsClear() {
		setNull("start_date")
	}
	if v, ok := patch.EndDate.Get(); ok {
		assign("end_date", v)
	} else if patch.EndDate.IsClear() {
		setNull("end_date")
	}
	if v, ok := patch.Country.Get(); ok {
		assign("country", v)
	}
	stringCol("prefecture", patch.Prefecture)
	stringCol("city", patch.City)
	stringCol("address_line1", patch.AddressLine1)
	stringCol("postal_code", patch.PostalCode)
	if v, ok := patch.Latitude.Get(); ok {
		assign("latitude", v)
	} else if patch.Latitude.IsClear() {
		setNull("latitude")
	}
	if v, ok := patch.Longitude.Get(); ok {
		assign("longitude", v)
	} else if patch.Longitude.IsClear() {
		setNull("longitude")
	}
	stringCol("phone_number", patch.PhoneNumber)
	stringCol("email", patch.Email)
	stringCol("contact_name", patch.ContactName)
	stringCol("contact_phone", patch.ContactPhone)
	stringCol("contact_email", patch.ContactEmail)
	if v, ok := patch.Capacity.Get(); ok {
		assign("capacity", v)
	} else if patch.Capacity.IsClear() {
		setNull("capacity")
	}
	stringCol("note", patch.Note)
	stringCol("image_url", patch.ImageURL)
	if v, ok := patch.IsIntegrated.Get(); ok {
		assign("is_integrated", v)
	}
	if v, ok := patch.DisplayOrder.Get(); ok {
		assign("display_order", v)
	} else if patch.DisplayOrder.IsClear() {
		setNull("display_order")
	}
	stringCol("billing_code", patch.BillingCode)
	if patch.UpdatedBy != nil {
		assign("updated_by", *patch.UpdatedBy)
	}

	return sets, args
}

// Deactivate forces the status to INACTIVE and always overwrites the end
// date: a nil end date clears the stored one.
func (r *repository) Deactivate(
	ctx context.Context,
	id string,
	endDate *time.Time,
) (*Facility, error) {
	query := fmt.Sprintf(`
		UPDATE facilities
		SET status = $2,
		    end_date = $3,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, facilityColumns)

	var facility Facility
	err := r.db.GetContext(ctx, &facility, query, id, StatusInactive, endDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deactivate facility: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("deactivate facility: %w", err)
	}

	return &facility, nil
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
