package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"clientdesk/internal/backend"
	"clientdesk/internal/config"
	"clientdesk/internal/handlers"
	"clientdesk/internal/logger"
	"clientdesk/internal/middleware"
	"clientdesk/internal/pdf"
	"clientdesk/internal/routes"
	"clientdesk/internal/services"
	"clientdesk/internal/state"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "clientdesk/docs"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	slogger := logger.New()

	// === Backend API client ===
	api := backend.New(cfg.Backend.BaseURL, cfg.BackendTimeout())

	// === Shared state ===
	list := state.NewSharedList()

	// === Services ===
	voucherGen := pdf.NewVoucherGenerator(cfg.Voucher.Issuer)
	clientService := services.NewClientService(api, list)
	receiptService := services.NewReceiptService(api, list, voucherGen)

	// === Handlers ===
	searchHandler := handlers.NewSearchHandler(clientService, list, slogger)
	detailHandler := handlers.NewDetailHandler(clientService, slogger)
	editHandler := handlers.NewEditHandler(clientService, slogger)
	registerHandler := handlers.NewRegisterHandler(clientService, slogger)
	receiptHandler := handlers.NewReceiptHandler(receiptService, list, slogger)
	apiHandler := handlers.NewAPIHandler(clientService, receiptService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.RequestID())
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		list,
		searchHandler,
		detailHandler,
		editHandler,
		registerHandler,
		receiptHandler,
		apiHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	slogger.Info("server listening", "addr", listenAddr, "backend", cfg.Backend.BaseURL)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
