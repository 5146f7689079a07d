// AngelaMos | 2026
// csv.go

package facility

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/kanriapp/masterdata-api/internal/form"
)

var csvHeader = []string{
	"id", "code", "name", "name_kana", "category", "status",
	"start_date", "end_date", "country", "prefecture", "city",
	"address_line1", "postal_code", "latitude", "longitude",
	"phone_number", "email", "contact_name", "contact_phone",
	"contact_email", "capacity", "note", "is_integrated",
	"display_order", "billing_code", "created_at", "updated_at",
}

func writeFacilitiesCSV(w http.ResponseWriter, facilities []Facility) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="facilities.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)

	for i := range facilities {
		_ = cw.Write(csvRecord(&facilities[i]))
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("write facilities csv", "error", err)
	}
}

func csvRecord(f *Facility) []string {
	return []string{
		f.ID,
		f.Code,
		f.Name,
		derefOrEmpty(f.NameKana),
		f.Category,
		f.Status,
		dateString(f.StartDate),
		dateString(f.EndDate),
		f.Country,
		derefOrEmpty(f.Prefecture),
		derefOrEmpty(f.City),
		derefOrEmpty(f.AddressLine1),
		derefOrEmpty(f.PostalCode),
		floatString(f.Latitude),
		floatString(f.Longitude),
		derefOrEmpty(f.PhoneNumber),
		derefOrEmpty(f.Email),
		derefOrEmpty(f.ContactName),
		derefOrEmpty(f.ContactPhone),
		derefOrEmpty(f.ContactEmail),
		intString(f.Capacity),
		derefOrEmpty(f.Note),
		strconv.FormatBool(f.IsIntegrated),
		intString(f.DisplayOrder),
		derefOrEmpty(f.BillingCode),
		f.CreatedAt.Format(time.RFC3339),
		f.UpdatedAt.Format(time.RFC3339),
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(form.DateLayout)
}

func floatString(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func intString(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
