package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, 5*time.Second, staticToken(token), zerolog.Nop())
	return client, server
}

func TestGetUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank-accounts/42", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":42,"account_name":"Compte Principal"}}`))
	}), "")

	var account struct {
		ID          int64  `json:"id"`
		AccountName string `json:"account_name"`
	}
	require.NoError(t, client.Get(context.Background(), "/bank-accounts", 42, &account))
	assert.Equal(t, int64(42), account.ID)
	assert.Equal(t, "Compte Principal", account.AccountName)
}

func TestGetAcceptsBarePayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Entrepôt Rungis"}`))
	}), "")

	var site struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/sites", 7, &site))
	assert.Equal(t, "Entrepôt Rungis", site.Name)
}

func TestGetNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Élément introuvable"}`))
	}), "")

	var out map[string]any
	err := client.Get(context.Background(), "/drivers", 99, &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetNullDataIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null}`))
	}), "")

	var out map[string]any
	err := client.Get(context.Background(), "/drivers", 3, &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerErrorMessagePassedThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Le contrat est verrouillé"}`))
	}), "")

	var out map[string]any
	err := client.Get(context.Background(), "/contracts", 1, &out)
	se, ok := AsServerError(err)
	require.True(t, ok, "expected *ServerError, got %v", err)
	assert.Equal(t, "Le contrat est verrouillé", se.Message)
}

func TestConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := NewClient(server.URL, time.Second, nil, zerolog.Nop())

	var out map[string]any
	err := client.Get(context.Background(), "/vehicles", 1, &out)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestListEnvelopeWithPagination(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "20", query.Get("pageSize"))
		assert.Equal(t, "moreau", query.Get("search_term"))
		assert.Equal(t, "active", query.Get("status"))
		w.Write([]byte(`{"success":true,"data":[{"id":1},{"id":2}],"pagination":{"total":45,"totalPages":3}}`))
	}), "")

	var rows []map[string]any
	pagination, err := client.List(context.Background(), "/contracts", ListQuery{
		Page:       2,
		PageSize:   20,
		SearchTerm: "moreau",
		Filters:    map[string]string{"status": "active", "empty": ""},
	}, &rows)
	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.Equal(t, 45, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Len(t, rows, 2)
}

func TestListBareArrayHasNoPagination(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1},{"id":2},{"id":3}]`))
	}), "")

	var rows []map[string]any
	pagination, err := client.List(context.Background(), "/rates", ListQuery{Page: 1, PageSize: 20}, &rows)
	require.NoError(t, err)
	assert.Nil(t, pagination)
	assert.Len(t, rows, 3)
}

func TestListNullDataIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null,"pagination":{"total":0,"totalPages":1}}`))
	}), "")

	var rows []map[string]any
	pagination, err := client.List(context.Background(), "/contracts", ListQuery{Page: 1, PageSize: 20}, &rows)
	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.Equal(t, 0, pagination.Total)
	assert.Empty(t, rows)
}

func TestErrorStatusWithNonEnvelopeBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body>502 Bad Gateway</body></html>"))
	}), "")

	var out map[string]any
	err := client.Get(context.Background(), "/vehicles", 1, &out)
	se, ok := AsServerError(err)
	require.True(t, ok, "expected *ServerError, got %v", err)
	assert.Empty(t, se.Message)
}

func TestBearerTokenAttached(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jeton-test", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	}), "jeton-test")

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/vehicles", 1, &out))
}

func TestUpdateSendsFullBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/drivers/3", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"id":3}}`))
	}), "")

	body := map[string]any{"first_name": "Sophie", "last_name": "Lenoir"}
	require.NoError(t, client.Update(context.Background(), "/drivers", 3, body, nil))
}

func TestDeleteSuccessEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":true,"message":"Supprimé"}`))
	}), "")

	require.NoError(t, client.Delete(context.Background(), "/sites", 2))
}

func TestDeleteSuccessFalse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Suppression refusée"}`))
	}), "")

	err := client.Delete(context.Background(), "/sites", 2)
	se, ok := AsServerError(err)
	require.True(t, ok)
	assert.Equal(t, "Suppression refusée", se.Message)
}
