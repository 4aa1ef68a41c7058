package routes

import (
	"github.com/gin-gonic/gin"

	"clientdesk/internal/handlers"
	"clientdesk/internal/middleware"
	"clientdesk/internal/state"
)

func SetupRoutes(
	r *gin.Engine,
	list *state.SharedList,
	searchHandler *handlers.SearchHandler,
	detailHandler *handlers.DetailHandler,
	editHandler *handlers.EditHandler,
	registerHandler *handlers.RegisterHandler,
	receiptHandler *handlers.ReceiptHandler,
	apiHandler *handlers.APIHandler,
) *gin.Engine {

	// ---- pages (flow boundary owns shared-list teardown)
	pages := r.Group("/", middleware.FlowBoundary(list))
	{
		pages.GET("/", func(c *gin.Context) {
			c.Redirect(302, "/consultar/cliente")
		})

		pages.GET("/consultar/cliente", searchHandler.Index)
		pages.POST("/consultar/cliente", searchHandler.Search)
		pages.GET("/consultar/cliente/detalhes/:id", detailHandler.Show)
		pages.POST("/consultar/cliente/detalhes/:id/excluir", detailHandler.Delete)

		pages.GET("/editar/cliente/:id", editHandler.Form)
		pages.POST("/editar/cliente/:id", editHandler.Submit)

		pages.GET("/cadastrar/cliente", registerHandler.Form)
		pages.POST("/cadastrar/cliente", registerHandler.Submit)

		pages.GET("/consultar/recibo", receiptHandler.Index)
		pages.POST("/consultar/recibo", receiptHandler.Search)
		pages.GET("/consultar/recibo/detalhes/:id", receiptHandler.Show)
		pages.GET("/consultar/recibo/detalhes/:id/comprovante", receiptHandler.Voucher)

		pages.GET("/cadastrar/recibo", receiptHandler.RegisterForm)
		pages.POST("/cadastrar/recibo", receiptHandler.RegisterSubmit)
	}

	// ---- JSON API for the filter widgets (no flow teardown here)
	api := r.Group("/api")
	{
		api.GET("/clientes", apiHandler.SearchClients)
		api.GET("/clientes/:id", apiHandler.GetClient)
		api.GET("/recibos", apiHandler.SearchReceipts)
	}

	return r
}
