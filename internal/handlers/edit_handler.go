package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/forms"
	"clientdesk/internal/services"
)

// EditHandler serves the pre-filled edit form and its submit flow.
type EditHandler struct {
	Service *services.ClientService
	Log     *slog.Logger
}

func NewEditHandler(service *services.ClientService, log *slog.Logger) *EditHandler {
	return &EditHandler{Service: service, Log: log}
}

// Form renders the edit form pre-filled from a fetch-by-id. The phone goes
// into form state unmasked; the field applies its display mask on its own.
func (h *EditHandler) Form(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	form, err := h.Service.PrefillEdit(c.Request.Context(), id)
	if err != nil {
		h.Log.ErrorContext(c.Request.Context(), "edit prefill failed", "id", id, "error", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Cliente indisponível",
			"Message": "Não foi possível carregar os dados do cliente.",
			"BackURL": "/consultar/cliente",
		})
		return
	}

	h.renderForm(c, id, form, nil)
}

// Submit validates at the form level first; only a clean form reaches the
// service's refetch/diff/update flow.
func (h *EditHandler) Submit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	form := forms.ClientForm{
		Name:  c.PostForm("nome"),
		Email: c.PostForm("email"),
		Phone: forms.UnmaskPhone(c.PostForm("celular")),
	}

	if errs := form.Validate(); len(errs) > 0 {
		h.renderForm(c, id, form, errs)
		return
	}

	result := h.Service.SubmitEdit(c.Request.Context(), id, form)
	switch result.Outcome {
	case services.EditSuccess:
		renderOverlay(c, result.Message, fmt.Sprintf("/consultar/cliente/detalhes/%d", id))
	case services.EditNoChanges:
		renderOverlay(c, result.Message, fmt.Sprintf("/editar/cliente/%d", id))
	case services.EditInvalid:
		h.renderForm(c, id, form, result.FieldErrors)
	default:
		renderOverlay(c, result.Message, fmt.Sprintf("/editar/cliente/%d", id))
	}
}

func (h *EditHandler) renderForm(c *gin.Context, id int, form forms.ClientForm, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	c.HTML(http.StatusOK, "client_edit.html", gin.H{
		"ID":          id,
		"Form":        form,
		"MaskedPhone": forms.MaskPhone(form.Phone),
		"Errors":      errs,
		"SubmitURL":   fmt.Sprintf("/editar/cliente/%d", id),
	})
}
