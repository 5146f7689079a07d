// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID          string     `db:"id"`
	Email       string     `db:"email"`
	Name        string     `db:"name"`
	NameKana    *string    `db:"name_kana"`
	Role        string     `db:"role"`
	Status      string     `db:"status"`
	Department  *string    `db:"department"`
	Title       *string    `db:"title"`
	PhoneNumber *string    `db:"phone_number"`
	Image       *string    `db:"image"`
	Note        *string    `db:"note"`
	LastLoginAt *time.Time `db:"last_login_at"`
	MFAEnabled  bool       `db:"mfa_enabled"`
	IsLocked    bool       `db:"is_locked"`
	CreatedBy   *string    `db:"created_by"`
	UpdatedBy   *string    `db:"updated_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

const (
	StatusActive   = "ACTIVE"
	StatusInvited  = "INVITED"
	StatusDisabled = "DISABLED"
)
