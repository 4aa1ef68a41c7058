package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/state"
)

// Path prefixes that own a shared list. The detail page nests under the
// search prefix so the cached list survives search -> detail navigation and
// the delete flow can evict from it.
const (
	clientFlowPrefix  = "/consultar/cliente"
	receiptFlowPrefix = "/consultar/recibo"
)

// FlowBoundary is the teardown of the consult flows: rendering any page
// outside a flow resets that flow's shared list and the no-results flag, so
// the next visit starts clean instead of flashing the previous results.
//
// Apply to page routes only; the JSON API and static assets never tear down.
func FlowBoundary(list *state.SharedList) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, clientFlowPrefix) {
			list.ResetClients()
		}
		if !strings.HasPrefix(path, receiptFlowPrefix) {
			list.ResetReceipts()
		}
		c.Next()
	}
}
