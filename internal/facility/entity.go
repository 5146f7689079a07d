// AngelaMos | 2026
// entity.go

package facility

import (
	"time"
)

type Facility struct {
	ID           string     `db:"id"`
	Code         string     `db:"code"`
	Name         string     `db:"name"`
	NameKana     *string    `db:"name_kana"`
	Category     string     `db:"category"`
	Status       string     `db:"status"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	Country      string     `db:"country"`
	Prefecture   *string    `db:"prefecture"`
	City         *string    `db:"city"`
	AddressLine1 *string    `db:"address_line1"`
	PostalCode   *string    `db:"postal_code"`
	Latitude     *float64   `db:"latitude"`
	Longitude    *float64   `db:"longitude"`
	PhoneNumber  *string    `db:"phone_number"`
	Email        *string    `db:"email"`
	ContactName  *string    `db:"contact_name"`
	ContactPhone *string    `db:"contact_phone"`
	ContactEmail *string    `db:"contact_email"`
	Capacity     *int       `db:"capacity"`
	Note         *string    `db:"note"`
	ImageURL     *string    `db:"image_url"`
	SyncedAt     *time.Time `db:"synced_at"`
	IsIntegrated bool       `db:"is_integrated"`
	DisplayOrder *int       `db:"display_order"`
	BillingCode  *string    `db:"billing_code"`
	CreatedBy    *string    `db:"created_by"`
	UpdatedBy    *string    `db:"updated_by"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

const (
	CategoryHead      = "HEAD"
	CategoryBranch    = "BRANCH"
	CategoryWarehouse = "WAREHOUSE"
	CategoryStore     = "STORE"
	CategoryOther     = "OTHER"
)

const (
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusClosed    = "CLOSED"
)
