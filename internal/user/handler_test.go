// AngelaMos | 2026
// handler_test.go

package user

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (chi.Router, *InMemoryRepository) {
	t.Helper()

	repo := NewInMemoryRepository()
	handler := NewHandler(NewService(repo))

	router := chi.NewRouter()
	router.Route("/v1", handler.RegisterRoutes)
	return router, repo
}

type listEnvelope struct {
	Success bool           `json:"success"`
	Data    []UserResponse `json:"data"`
	Meta    struct {
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
		Total    int `json:"total"`
	} `json:"meta"`
}

type singleEnvelope struct {
	Success bool         `json:"success"`
	Data    UserResponse `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func doJSON(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateAndGetUser(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/users", `{
		"email": "Tanaka@Example.com",
		"name": "Tanaka Yuki",
		"role": "ADMIN",
		"status": "ACTIVE"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}

	var created singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.Email != "tanaka@example.com" {
		t.Errorf("email = %q, want normalized lowercase", created.Data.Email)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/users/"+created.Data.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
}

func TestHandler_CreateUser_ValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/users", `{
		"email": "not-an-email",
		"name": "",
		"role": "ADMIN",
		"status": "ACTIVE"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "VALIDATION_FAILED" {
		t.Errorf("code = %q", resp.Error.Code)
	}
	if len(resp.Error.Details) != 2 {
		t.Errorf("details = %+v, want email and name errors", resp.Error.Details)
	}
}

func TestHandler_CreateUser_DuplicateEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"email":"dup@example.com","name":"One","role":"USER","status":"ACTIVE"}`
	if rec := doJSON(t, router, http.MethodPost, "/v1/users", body); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/v1/users", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var resp singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "DUPLICATE_KEY" {
		t.Errorf("code = %q", resp.Error.Code)
	}
}

func TestHandler_ListUsers_FilterAndPaginate(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 25; i++ {
		body := fmt.Sprintf(
			`{"email":"user%02d@example.com","name":"User %02d","role":"USER","status":"ACTIVE"}`,
			i, i)
		if rec := doJSON(t, router, http.MethodPost, "/v1/users", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed %d status = %d", i, rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodGet, "/v1/users?page=2&page_size=10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp listEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Errorf("page len = %d, want 10", len(resp.Data))
	}
	if resp.Meta.Total != 25 || resp.Meta.Page != 2 || resp.Meta.PageSize != 10 {
		t.Errorf("meta = %+v", resp.Meta)
	}

	// Keyword filters server-side; total reflects the filtered count.
	rec = doJSON(t, router, http.MethodGet, "/v1/users?keyword=user01", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Meta.Total != 1 || len(resp.Data) != 1 {
		t.Errorf("filtered meta = %+v, data len %d", resp.Meta, len(resp.Data))
	}
}

func TestHandler_UpdateUser_TriState(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/users",
		`{"email":"a@example.com","name":"A","role":"USER","status":"ACTIVE","department":"Sales"}`)
	var created singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, router, http.MethodPatch, "/v1/users/"+created.Data.ID,
		`{"name":"A2","department":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", rec.Code, rec.Body)
	}

	var updated singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Data.Name != "A2" {
		t.Errorf("name = %q", updated.Data.Name)
	}
	if updated.Data.Department != nil {
		t.Errorf("department = %v, want cleared", *updated.Data.Department)
	}
}

func TestHandler_UpdateUser_EmptyPatch(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/users",
		`{"email":"a@example.com","name":"A","role":"USER","status":"ACTIVE"}`)
	var created singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, router, http.MethodPatch, "/v1/users/"+created.Data.ID, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_DeleteUser(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/users",
		`{"email":"a@example.com","name":"A","role":"USER","status":"ACTIVE"}`)
	var created singleEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, router, http.MethodDelete, "/v1/users/"+created.Data.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/users/"+created.Data.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", rec.Code)
	}
}

func TestHandler_ExportUsersCSV(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/users",
		`{"email":"a@example.com","name":"A","role":"USER","status":"ACTIVE"}`)
	doJSON(t, router, http.MethodPost, "/v1/users",
		`{"email":"b@example.com","name":"B","role":"ADMIN","status":"DISABLED"}`)

	rec := doJSON(t, router, http.MethodGet, "/v1/users/export?status=ACTIVE", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header + 1 row: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "id,email,name") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "a@example.com") {
		t.Errorf("row = %q", lines[1])
	}
}
