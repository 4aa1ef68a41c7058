package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientdesk/internal/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 2*time.Second), srv
}

func TestGetClient(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes/7", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(models.Client{ID: 7, Name: "Maria", Email: "maria@exemplo.com", Phone: "(11) 99999-8888"})
	}))
	defer srv.Close()

	got, err := c.GetClient(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Maria", got.Name)
	assert.Equal(t, "(11) 99999-8888", got.Phone)
}

func TestSearchClientsBuildsQuery(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes", r.URL.Path)
		assert.Equal(t, "maria", r.URL.Query().Get("nome"))
		assert.Empty(t, r.URL.Query().Get("email"))
		json.NewEncoder(w).Encode([]models.Client{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	got, err := c.SearchClients(context.Background(), Filter{Name: "maria"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateClientSendsFullPayload(t *testing.T) {
	var body models.ClientPayload
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/clientes/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.Client{ID: 7})
	}))
	defer srv.Close()

	_, err := c.UpdateClient(context.Background(), 7, models.ClientPayload{
		Name: "Maria", Email: "maria@exemplo.com", Phone: "11999998888",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClientPayload{Name: "Maria", Email: "maria@exemplo.com", Phone: "11999998888"}, body)
}

func TestErrorKinds(t *testing.T) {
	t.Run("non-2xx with detail body", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"detail": "e-mail já cadastrado"})
		}))
		defer srv.Close()

		_, err := c.GetClient(context.Background(), 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Equal(t, "e-mail já cadastrado", apiErr.Detail)
	})

	t.Run("non-2xx without detail", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := c.DeleteClient(context.Background(), 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Empty(t, apiErr.Detail)
	})

	t.Run("request sent but no response", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		c := New(srv.URL, 2*time.Second)
		srv.Close() // connection now refused

		_, err := c.GetClient(context.Background(), 1)
		var connErr *ConnectivityError
		require.ErrorAs(t, err, &connErr)
	})

	t.Run("request cannot be constructed", func(t *testing.T) {
		c := New(":", 2*time.Second)

		_, err := c.GetClient(context.Background(), 1)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
	})
}

func TestDeleteClientNoBody(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, c.DeleteClient(context.Background(), 42))
}

func TestSearchReceipts(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recibos", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("dataInicio"))
		json.NewEncoder(w).Encode([]models.Receipt{{ID: 3, Amount: 99.9}})
	}))
	defer srv.Close()

	got, err := c.SearchReceipts(context.Background(), ReceiptFilter{From: "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 99.9, got[0].Amount)
}
