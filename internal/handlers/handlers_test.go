package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientdesk/internal/backend"
	"clientdesk/internal/models"
	"clientdesk/internal/services"
	"clientdesk/internal/state"
)

// pageFixture wires real services against a scriptable fake backend and a
// gin engine with the production templates.
type pageFixture struct {
	router   *gin.Engine
	list     *state.SharedList
	putCalls *int
	backend  *httptest.Server
}

func newPageFixture(t *testing.T, current models.Client, searchResult []models.Client, deleteStatus int) *pageFixture {
	t.Helper()

	putCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/clientes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResult)
	})
	mux.HandleFunc("/clientes/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(current)
		case http.MethodPut:
			putCalls++
			json.NewEncoder(w).Encode(current)
		case http.MethodDelete:
			status := deleteStatus
			if status == 0 {
				status = http.StatusOK
			}
			w.WriteHeader(status)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	list := state.NewSharedList()
	svc := services.NewClientService(backend.New(srv.URL, 0), list)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")

	search := NewSearchHandler(svc, list, log)
	detail := NewDetailHandler(svc, log)
	edit := NewEditHandler(svc, log)

	r.GET("/consultar/cliente", search.Index)
	r.POST("/consultar/cliente", search.Search)
	r.GET("/consultar/cliente/detalhes/:id", detail.Show)
	r.POST("/consultar/cliente/detalhes/:id/excluir", detail.Delete)
	r.GET("/editar/cliente/:id", edit.Form)
	r.POST("/editar/cliente/:id", edit.Submit)

	return &pageFixture{router: r, list: list, putCalls: &putCalls, backend: srv}
}

func (f *pageFixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	f.router.ServeHTTP(w, req)
	return w
}

func (f *pageFixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	f.router.ServeHTTP(w, req)
	return w
}

func TestSearchPageRendersRows(t *testing.T) {
	f := newPageFixture(t, models.Client{}, []models.Client{
		{ID: 1, Name: "Maria", Email: "maria@exemplo.com"},
		{ID: 2, Name: "João", Email: "joao@exemplo.com"},
	}, 0)

	w := f.postForm("/consultar/cliente", url.Values{"nome": {"a"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "2 cliente(s) encontrado(s)")
	assert.Contains(t, body, "maria@exemplo.com")
	assert.Contains(t, body, "/consultar/cliente/detalhes/1")
	assert.Len(t, f.list.Clients(), 2)
}

func TestSearchPageNoResults(t *testing.T) {
	f := newPageFixture(t, models.Client{}, []models.Client{}, 0)

	w := f.postForm("/consultar/cliente", url.Values{"nome": {"zz"}})

	assert.Contains(t, w.Body.String(), services.MsgNoClientsFound)
	assert.True(t, f.list.NoResults())
}

func TestSearchIndexStartsClean(t *testing.T) {
	f := newPageFixture(t, models.Client{}, nil, 0)
	f.list.ReplaceClients([]models.Client{{ID: 9, Name: "Resto"}})
	f.list.SetNoResults(true)

	w := f.get("/consultar/cliente")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Resto")
	assert.Empty(t, f.list.Clients())
	assert.False(t, f.list.NoResults())
}

func TestDetailPageFormatsFields(t *testing.T) {
	f := newPageFixture(t, models.Client{
		ID: 7, Name: "Maria", Email: "maria@exemplo.com",
		Phone: "11999998888", RegistrationDate: "2024-05-10",
	}, nil, 0)

	w := f.get("/consultar/cliente/detalhes/7")

	body := w.Body.String()
	assert.Contains(t, body, "(11) 99999-8888")
	assert.Contains(t, body, "10/05/2024")
	assert.Contains(t, body, "/editar/cliente/7")
}

func TestDeleteOverlayDestinations(t *testing.T) {
	t.Run("success goes back to search", func(t *testing.T) {
		f := newPageFixture(t, models.Client{ID: 42}, nil, 0)
		f.list.ReplaceClients([]models.Client{{ID: 41}, {ID: 42}})

		w := f.postForm("/consultar/cliente/detalhes/42/excluir", url.Values{})

		body := w.Body.String()
		assert.Contains(t, body, services.MsgDeleteSuccess)
		assert.Contains(t, body, `href="/consultar/cliente"`)
		assert.Len(t, f.list.Clients(), 1)
	})

	t.Run("failure returns to the detail view", func(t *testing.T) {
		f := newPageFixture(t, models.Client{ID: 42}, nil, http.StatusInternalServerError)
		f.list.ReplaceClients([]models.Client{{ID: 41}, {ID: 42}})

		w := f.postForm("/consultar/cliente/detalhes/42/excluir", url.Values{})

		body := w.Body.String()
		assert.Contains(t, body, services.MsgDeleteFailure)
		assert.Contains(t, body, `href="/consultar/cliente/detalhes/42"`)
		assert.Len(t, f.list.Clients(), 2)
	})
}

func TestEditFormPrefillsUnmasked(t *testing.T) {
	f := newPageFixture(t, models.Client{
		ID: 7, Name: "Maria", Email: "maria@exemplo.com", Phone: "(11) 99999-8888",
	}, nil, 0)

	w := f.get("/editar/cliente/7")

	// form state holds raw digits, the field renders them masked
	assert.Contains(t, w.Body.String(), `value="(11) 99999-8888"`)
}

func TestEditSubmitValidationStopsBeforeDiff(t *testing.T) {
	f := newPageFixture(t, models.Client{
		ID: 7, Name: "Maria", Email: "maria@exemplo.com", Phone: "11999998888",
	}, nil, 0)

	w := f.postForm("/editar/cliente/7", url.Values{
		"nome":    {"Maria"},
		"email":   {"not-an-email"},
		"celular": {"11999998888"},
	})

	assert.Contains(t, w.Body.String(), "Insira um e-mail válido")
	assert.Zero(t, *f.putCalls, "invalid form must never reach the diff/update")
}

func TestEditSubmitNoChangesOverlay(t *testing.T) {
	f := newPageFixture(t, models.Client{
		ID: 7, Name: "Maria", Email: "maria@exemplo.com", Phone: "(11) 99999-8888",
	}, nil, 0)

	w := f.postForm("/editar/cliente/7", url.Values{
		"nome":    {"Maria"},
		"email":   {"maria@exemplo.com"},
		"celular": {"11999998888"},
	})

	assert.Contains(t, w.Body.String(), services.MsgEditNoChanges)
	assert.Zero(t, *f.putCalls)
}

func TestEditSubmitSuccessOverlay(t *testing.T) {
	f := newPageFixture(t, models.Client{
		ID: 7, Name: "Maria", Email: "maria@exemplo.com", Phone: "11999998888",
	}, nil, 0)

	w := f.postForm("/editar/cliente/7", url.Values{
		"nome":    {"Maria Oliveira"},
		"email":   {"maria@exemplo.com"},
		"celular": {"11999998888"},
	})

	body := w.Body.String()
	assert.Contains(t, body, services.MsgEditSuccess)
	assert.Contains(t, body, `href="/consultar/cliente/detalhes/7"`)
	assert.Equal(t, 1, *f.putCalls)
}

func TestNonNumericIDIsExplicitError(t *testing.T) {
	f := newPageFixture(t, models.Client{}, nil, 0)

	w := f.get("/consultar/cliente/detalhes/abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Identificador inválido")
}
