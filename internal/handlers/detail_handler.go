package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/forms"
	"clientdesk/internal/services"
	"clientdesk/internal/utils"
)

// DetailHandler serves the client detail page and its delete flow.
type DetailHandler struct {
	Service *services.ClientService
	Log     *slog.Logger
}

func NewDetailHandler(service *services.ClientService, log *slog.Logger) *DetailHandler {
	return &DetailHandler{Service: service, Log: log}
}

// Show fetches the record by id and renders its fields, dates in the
// human-readable format and phone masked for display.
func (h *DetailHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.Log.ErrorContext(c.Request.Context(), "client fetch failed", "id", id, "error", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Cliente indisponível",
			"Message": "Não foi possível carregar os dados do cliente.",
			"BackURL": "/consultar/cliente",
		})
		return
	}

	c.HTML(http.StatusOK, "client_detail.html", gin.H{
		"Client":           client,
		"Phone":            forms.MaskPhone(client.Phone),
		"RegistrationDate": utils.FormatDate(client.RegistrationDate),
		"UpdateDate":       utils.FormatDate(client.UpdateDate),
		"EditURL":          fmt.Sprintf("/editar/cliente/%d", client.ID),
		"DeleteURL":        fmt.Sprintf("/consultar/cliente/detalhes/%d/excluir", client.ID),
	})
}

// Delete runs the delete flow and renders the confirmation overlay. On
// success the back action returns to the search page; on failure it returns
// to this detail view.
func (h *DetailHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.Service.Delete(c.Request.Context(), id)
	if result.Deleted {
		renderOverlay(c, result.Message, "/consultar/cliente")
		return
	}
	renderOverlay(c, result.Message, fmt.Sprintf("/consultar/cliente/detalhes/%d", id))
}
