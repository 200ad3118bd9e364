package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"upireceipts.in/app/internal/http/handlers"
	"upireceipts.in/app/internal/http/middleware"
	"upireceipts.in/app/internal/modules/receipts"
	"upireceipts.in/app/internal/storage"
)

type RouterConfig struct {
	Logger   *slog.Logger
	Pipeline *receipts.Pipeline
	Store    storage.Store

	// ReceiptDir enables the static convenience mount under /files when the
	// local storage driver is in use. Empty disables it.
	ReceiptDir string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(cfg.Logger))
	// ErrorHandler before Recovery: a recovered panic records an error on the
	// context, and the handler one level up turns it into the JSON response.
	r.Use(middleware.ErrorHandler(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	r.GET("/healthz", handlers.Health)

	wh := handlers.NewWebhookHandler(cfg.Logger, cfg.Pipeline)
	r.POST("/webhooks/chat", wh.Handle)

	rh := handlers.NewReceiptHandler(cfg.Logger, cfg.Store)
	r.GET("/receipts/:name", rh.Get)

	if cfg.ReceiptDir != "" {
		files := r.Group("/files", pdfFileHeaders())
		files.Static("/", cfg.ReceiptDir)
	}

	return r
}

// pdfFileHeaders applies the same PDF headers as the receipt handler to the
// static mount. Range support itself comes from http.ServeContent underneath.
func pdfFileHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-Ranges", "bytes")
		c.Header("Cache-Control", "public, max-age=86400")
		c.Header("Content-Disposition", "inline")
		c.Next()
	}
}
