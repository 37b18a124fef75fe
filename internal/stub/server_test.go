package stub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewStore(), zerolog.Nop())
	return NewRouter(handler, "test")
}

type envelope struct {
	Success    bool             `json:"success"`
	Data       json.RawMessage  `json:"data"`
	Message    string           `json:"message"`
	Pagination *struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

func doRequest(t *testing.T, router *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func TestListPaginationEnvelope(t *testing.T) {
	router := newTestRouter()

	w, env := doRequest(t, router, http.MethodGet, "/api/bank-accounts?page=1&pageSize=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if env.Pagination == nil || env.Pagination.Total != 3 || env.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected pagination: %+v", env.Pagination)
	}

	var rows []map[string]any
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows on page 1, got %d", len(rows))
	}
}

func TestListSearchAndFilter(t *testing.T) {
	router := newTestRouter()

	_, env := doRequest(t, router, http.MethodGet, "/api/drivers?search_term=berger", nil)
	var rows []map[string]any
	json.Unmarshal(env.Data, &rows)
	if len(rows) != 1 || rows[0]["last_name"] != "Berger" {
		t.Fatalf("search_term did not match: %v", rows)
	}

	_, env = doRequest(t, router, http.MethodGet, "/api/drivers?status=on_leave", nil)
	json.Unmarshal(env.Data, &rows)
	if len(rows) != 1 || rows[0]["first_name"] != "Sophie" {
		t.Fatalf("filter did not match: %v", rows)
	}
}

func TestGetByID(t *testing.T) {
	router := newTestRouter()

	w, env := doRequest(t, router, http.MethodGet, "/api/bank-accounts/42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var account map[string]any
	json.Unmarshal(env.Data, &account)
	if account["account_name"] != "Compte Principal" || account["bank_name"] != "BNP" {
		t.Fatalf("unexpected account: %v", account)
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/bank-accounts/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateAssignsID(t *testing.T) {
	router := newTestRouter()

	body := map[string]any{"name": "Site Nantes", "type": "depot", "address": "1 quai", "city": "Nantes", "country": "France", "partner_id": 5, "partner_name": "Atlantique Fret"}
	w, env := doRequest(t, router, http.MethodPost, "/api/sites", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created map[string]any
	json.Unmarshal(env.Data, &created)
	id, ok := created["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("server did not assign an id: %v", created)
	}

	// A client-sent id is ignored on create.
	body["id"] = 4242
	_, env = doRequest(t, router, http.MethodPost, "/api/sites", body)
	json.Unmarshal(env.Data, &created)
	if created["id"].(float64) == 4242 {
		t.Fatalf("client id was honored: %v", created)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	router := newTestRouter()

	body := map[string]any{"first_name": "Julien", "last_name": "Berger-Dumont", "license_number": "75123456789", "license_type": "CE", "license_expiry": "2027-04-18", "status": "active", "partner_id": 12}

	for i := 0; i < 2; i++ {
		w, _ := doRequest(t, router, http.MethodPut, "/api/drivers/1", body)
		if w.Code != http.StatusOK {
			t.Fatalf("PUT %d: expected 200, got %d", i, w.Code)
		}
	}

	// Same PUT twice leaves the same entity state.
	_, env := doRequest(t, router, http.MethodGet, "/api/drivers/1", nil)
	var driver map[string]any
	json.Unmarshal(env.Data, &driver)
	if driver["last_name"] != "Berger-Dumont" {
		t.Fatalf("unexpected last_name: %v", driver["last_name"])
	}
	if driver["id"].(float64) != 1 {
		t.Fatalf("id changed on update: %v", driver["id"])
	}
}

func TestDeleteRemovesEntity(t *testing.T) {
	router := newTestRouter()

	w, env := doRequest(t, router, http.MethodDelete, "/api/surcharges/2", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/surcharges/2", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("entity still present after delete: %d", w.Code)
	}

	w, _ = doRequest(t, router, http.MethodDelete, "/api/surcharges/2", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete should 404, got %d", w.Code)
	}
}

func TestUnknownResource(t *testing.T) {
	router := newTestRouter()

	w, env := doRequest(t, router, http.MethodGet, "/api/widgets", nil)
	if w.Code != http.StatusNotFound || env.Success {
		t.Fatalf("expected 404 envelope, got %d %s", w.Code, w.Body.String())
	}
}

func TestPaginationSlicing(t *testing.T) {
	router := newTestRouter()

	for page := 1; page <= 2; page++ {
		_, env := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/contracts?page=%d&pageSize=2", page), nil)
		var rows []map[string]any
		json.Unmarshal(env.Data, &rows)
		expected := 2
		if page == 2 {
			expected = 1
		}
		if len(rows) != expected {
			t.Fatalf("page %d: expected %d rows, got %d", page, expected, len(rows))
		}
	}
}
