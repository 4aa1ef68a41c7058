package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/backend"
	"clientdesk/internal/services"
	"clientdesk/internal/state"
)

// SearchHandler serves the client search page: a filter form whose submit
// replaces the shared client list and renders the result rows.
type SearchHandler struct {
	Service *services.ClientService
	List    *state.SharedList
	Log     *slog.Logger
}

func NewSearchHandler(service *services.ClientService, list *state.SharedList, log *slog.Logger) *SearchHandler {
	return &SearchHandler{Service: service, List: list, Log: log}
}

// Index renders a clean search page. A fresh visit never shows a previous
// search's rows, so the shared state is reset here as well as at the flow
// boundary.
func (h *SearchHandler) Index(c *gin.Context) {
	h.List.ResetClients()
	c.HTML(http.StatusOK, "client_search.html", gin.H{
		"Clients":   nil,
		"NoResults": false,
		"Filter":    backend.Filter{},
	})
}

// Search runs the filtered query and renders the count plus one row per
// client, or the no-results message.
func (h *SearchHandler) Search(c *gin.Context) {
	filter := backend.Filter{
		Name:  strings.TrimSpace(c.PostForm("nome")),
		Email: strings.TrimSpace(c.PostForm("email")),
		Phone: strings.TrimSpace(c.PostForm("celular")),
	}

	clients, err := h.Service.Search(c.Request.Context(), filter)
	if err != nil {
		h.Log.ErrorContext(c.Request.Context(), "client search failed", "error", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Consulta indisponível",
			"Message": "Não foi possível consultar os clientes. Tente novamente.",
			"BackURL": "/consultar/cliente",
		})
		return
	}

	c.HTML(http.StatusOK, "client_search.html", gin.H{
		"Clients":          clients,
		"Count":            len(clients),
		"NoResults":        h.List.NoResults(),
		"NoResultsMessage": services.MsgNoClientsFound,
		"Filter":           filter,
	})
}
