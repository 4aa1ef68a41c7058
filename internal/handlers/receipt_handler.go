package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/backend"
	"clientdesk/internal/forms"
	"clientdesk/internal/services"
	"clientdesk/internal/state"
	"clientdesk/internal/utils"
)

// ReceiptHandler serves the receipt consult flow, registration and the
// voucher download.
type ReceiptHandler struct {
	Service *services.ReceiptService
	List    *state.SharedList
	Log     *slog.Logger
}

func NewReceiptHandler(service *services.ReceiptService, list *state.SharedList, log *slog.Logger) *ReceiptHandler {
	return &ReceiptHandler{Service: service, List: list, Log: log}
}

func (h *ReceiptHandler) Index(c *gin.Context) {
	h.List.ResetReceipts()
	c.HTML(http.StatusOK, "receipt_search.html", gin.H{
		"Receipts":  nil,
		"NoResults": false,
	})
}

func (h *ReceiptHandler) Search(c *gin.Context) {
	filter := backend.ReceiptFilter{
		ClientName: strings.TrimSpace(c.PostForm("nome")),
		From:       strings.TrimSpace(c.PostForm("dataInicio")),
		To:         strings.TrimSpace(c.PostForm("dataFim")),
	}

	receipts, err := h.Service.Search(c.Request.Context(), filter)
	if err != nil {
		h.Log.ErrorContext(c.Request.Context(), "receipt search failed", "error", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Consulta indisponível",
			"Message": "Não foi possível consultar os recibos. Tente novamente.",
			"BackURL": "/consultar/recibo",
		})
		return
	}

	c.HTML(http.StatusOK, "receipt_search.html", gin.H{
		"Receipts":         receipts,
		"Count":            len(receipts),
		"NoResults":        h.List.NoResults(),
		"NoResultsMessage": services.MsgNoReceiptsFound,
	})
}

func (h *ReceiptHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	receipt, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.Log.ErrorContext(c.Request.Context(), "receipt fetch failed", "id", id, "error", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Recibo indisponível",
			"Message": "Não foi possível carregar os dados do recibo.",
			"BackURL": "/consultar/recibo",
		})
		return
	}

	c.HTML(http.StatusOK, "receipt_detail.html", gin.H{
		"Receipt":     receipt,
		"PaymentDate": utils.FormatDate(receipt.PaymentDate),
		"Phone":       forms.MaskPhone(receipt.Client.Phone),
		"VoucherURL":  fmt.Sprintf("/consultar/recibo/detalhes/%d/comprovante", receipt.ID),
	})
}

// Voucher streams the receipt's payment voucher as a PDF download.
func (h *ReceiptHandler) Voucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	receipt, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Recibo indisponível",
			"Message": "Não foi possível carregar os dados do recibo.",
			"BackURL": "/consultar/recibo",
		})
		return
	}

	raw, err := h.Service.VoucherPDF(*receipt)
	if err != nil {
		h.Log.ErrorContext(c.Request.Context(), "voucher render failed", "id", id, "error", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Title":   "Comprovante indisponível",
			"Message": "Não foi possível gerar o comprovante.",
			"BackURL": fmt.Sprintf("/consultar/recibo/detalhes/%d", id),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="recibo_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", raw)
}

func (h *ReceiptHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "receipt_register.html", gin.H{
		"Form":   forms.ReceiptForm{},
		"Errors": map[string]string{},
	})
}

func (h *ReceiptHandler) RegisterSubmit(c *gin.Context) {
	form := forms.ReceiptForm{
		ClientID:    c.PostForm("clienteId"),
		Amount:      c.PostForm("valor"),
		PaymentType: c.PostForm("tipoPagamento"),
		PaymentDate: c.PostForm("dataPagamento"),
	}

	result := h.Service.Register(c.Request.Context(), form)
	if len(result.FieldErrors) > 0 {
		c.HTML(http.StatusOK, "receipt_register.html", gin.H{
			"Form":   form,
			"Errors": result.FieldErrors,
		})
		return
	}
	if result.Created {
		renderOverlay(c, result.Message, "/consultar/recibo")
		return
	}
	renderOverlay(c, result.Message, "/cadastrar/recibo")
}
