package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"clientdesk/internal/models"
	"clientdesk/internal/state"
)

func newFlowRouter(list *state.SharedList) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(FlowBoundary(list))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/consultar/cliente", ok)
	r.GET("/consultar/cliente/detalhes/:id", ok)
	r.GET("/editar/cliente/:id", ok)
	r.GET("/consultar/recibo", ok)
	return r
}

func visit(r *gin.Engine, path string) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
}

func TestFlowBoundaryTeardown(t *testing.T) {
	t.Run("leaving the client flow clears list and flag", func(t *testing.T) {
		list := state.NewSharedList()
		r := newFlowRouter(list)
		list.ReplaceClients([]models.Client{{ID: 1}, {ID: 2}})
		list.SetNoResults(true)

		visit(r, "/editar/cliente/1")

		assert.Empty(t, list.Clients())
		assert.False(t, list.NoResults())
	})

	t.Run("detail page stays inside the flow", func(t *testing.T) {
		list := state.NewSharedList()
		r := newFlowRouter(list)
		list.ReplaceClients([]models.Client{{ID: 1}, {ID: 2}})

		visit(r, "/consultar/cliente/detalhes/1")

		assert.Len(t, list.Clients(), 2, "delete flow needs the cached list, detail must not tear it down")
	})

	t.Run("receipt flow clears the client list and vice versa", func(t *testing.T) {
		list := state.NewSharedList()
		r := newFlowRouter(list)
		list.ReplaceClients([]models.Client{{ID: 1}})
		list.ReplaceReceipts([]models.Receipt{{ID: 9}})

		visit(r, "/consultar/recibo")
		assert.Empty(t, list.Clients())
		assert.Len(t, list.Receipts(), 1)

		visit(r, "/consultar/cliente")
		assert.Empty(t, list.Receipts())
	})
}
