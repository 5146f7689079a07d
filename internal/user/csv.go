// AngelaMos | 2026
// csv.go

package user

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "email", "name", "name_kana", "role", "status",
	"department", "title", "phone_number", "note",
	"mfa_enabled", "is_locked", "created_at", "updated_at",
}

func writeUsersCSV(w http.ResponseWriter, users []User) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)

	for i := range users {
		_ = cw.Write(csvRecord(&users[i]))
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("write users csv", "error", err)
	}
}

func csvRecord(u *User) []string {
	return []string{
		u.ID,
		u.Email,
		u.Name,
		derefOrEmpty(u.NameKana),
		u.Role,
		u.Status,
		derefOrEmpty(u.Department),
		derefOrEmpty(u.Title),
		derefOrEmpty(u.PhoneNumber),
		derefOrEmpty(u.Note),
		strconv.FormatBool(u.MFAEnabled),
		strconv.FormatBool(u.IsLocked),
		u.CreatedAt.Format(time.RFC3339),
		u.UpdatedAt.Format(time.RFC3339),
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
