package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/backend"
	"clientdesk/internal/services"
)

// APIHandler exposes the search and detail lookups as JSON for the filter
// widgets embedded in the pages.
type APIHandler struct {
	Clients  *services.ClientService
	Receipts *services.ReceiptService
}

func NewAPIHandler(clients *services.ClientService, receipts *services.ReceiptService) *APIHandler {
	return &APIHandler{Clients: clients, Receipts: receipts}
}

// @Summary      Consulta de clientes
// @Description  Busca clientes no backend pelos filtros informados
// @Tags         Clientes
// @Produce      json
// @Param        nome     query     string  false  "Nome do cliente"
// @Param        email    query     string  false  "E-mail do cliente"
// @Param        celular  query     string  false  "Celular do cliente"
// @Success      200      {array}   models.Client
// @Failure      502      {object}  map[string]string
// @Router       /api/clientes [get]
func (h *APIHandler) SearchClients(c *gin.Context) {
	filter := backend.Filter{
		Name:  strings.TrimSpace(c.Query("nome")),
		Email: strings.TrimSpace(c.Query("email")),
		Phone: strings.TrimSpace(c.Query("celular")),
	}
	clients, err := h.Clients.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "consulta indisponível"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary      Detalhe de cliente
// @Description  Busca um cliente pelo identificador
// @Tags         Clientes
// @Produce      json
// @Param        id   path      int  true  "ID do cliente"
// @Success      200  {object}  models.Client
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/clientes/{id} [get]
func (h *APIHandler) GetClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identificador inválido"})
		return
	}
	client, err := h.Clients.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cliente indisponível"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      Consulta de recibos
// @Description  Busca recibos no backend pelos filtros informados
// @Tags         Recibos
// @Produce      json
// @Param        nome        query     string  false  "Nome do cliente"
// @Param        dataInicio  query     string  false  "Data inicial (YYYY-MM-DD)"
// @Param        dataFim     query     string  false  "Data final (YYYY-MM-DD)"
// @Success      200         {array}   models.Receipt
// @Failure      502         {object}  map[string]string
// @Router       /api/recibos [get]
func (h *APIHandler) SearchReceipts(c *gin.Context) {
	filter := backend.ReceiptFilter{
		ClientName: strings.TrimSpace(c.Query("nome")),
		From:       strings.TrimSpace(c.Query("dataInicio")),
		To:         strings.TrimSpace(c.Query("dataFim")),
	}
	receipts, err := h.Receipts.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "consulta indisponível"})
		return
	}
	c.JSON(http.StatusOK, receipts)
}
