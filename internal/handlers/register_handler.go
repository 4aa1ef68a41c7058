package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/forms"
	"clientdesk/internal/services"
)

// RegisterHandler serves the client registration form.
type RegisterHandler struct {
	Service *services.ClientService
	Log     *slog.Logger
}

func NewRegisterHandler(service *services.ClientService, log *slog.Logger) *RegisterHandler {
	return &RegisterHandler{Service: service, Log: log}
}

func (h *RegisterHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "client_register.html", gin.H{
		"Form":   forms.ClientForm{},
		"Errors": map[string]string{},
	})
}

func (h *RegisterHandler) Submit(c *gin.Context) {
	form := forms.ClientForm{
		Name:  c.PostForm("nome"),
		Email: c.PostForm("email"),
		Phone: forms.UnmaskPhone(c.PostForm("celular")),
	}

	result := h.Service.Register(c.Request.Context(), form)
	if len(result.FieldErrors) > 0 {
		c.HTML(http.StatusOK, "client_register.html", gin.H{
			"Form":   form,
			"Errors": result.FieldErrors,
		})
		return
	}
	if result.Created {
		renderOverlay(c, result.Message, "/consultar/cliente")
		return
	}
	renderOverlay(c, result.Message, "/cadastrar/cliente")
}
