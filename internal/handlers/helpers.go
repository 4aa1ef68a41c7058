package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID parses the :id route param. A non-numeric id is an explicit error,
// never coerced: backend ids are integers and a mismatch here means a broken
// link rather than a record to look up.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Title":   "Identificador inválido",
			"Message": "O identificador informado não é válido.",
			"BackURL": "/consultar/cliente",
		})
		return 0, false
	}
	return id, true
}

// renderOverlay shows the modal-like message surface every flow ends in: a
// single message with one back action whose destination depends on the
// outcome.
func renderOverlay(c *gin.Context, message, backURL string) {
	c.HTML(http.StatusOK, "overlay.html", gin.H{
		"Message": message,
		"BackURL": backURL,
	})
}
