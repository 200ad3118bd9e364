package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "upireceipts.in/app/internal/http"
	"upireceipts.in/app/internal/modules/payments"
	"upireceipts.in/app/internal/modules/receipts"
	"upireceipts.in/app/internal/notify"
	"upireceipts.in/app/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	st, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", "driver", st.Driver)

	var dispatcher notify.Dispatcher = notify.NewTwilio(notify.TwilioConfig{
		AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		From:       os.Getenv("TWILIO_FROM"),
	})
	dispatcher = notify.NewLogged(dispatcher, db, logger)

	pipeline := receipts.NewPipeline(receipts.PipelineConfig{
		Lookup:     payments.NewGormLookup(db),
		Store:      st.Store,
		Dispatcher: dispatcher,
		Logger:     logger,
		BaseURL:    envOr("PUBLIC_BASE_URL", "http://localhost:8080"),
		FallbackTo: os.Getenv("FALLBACK_NOTIFY_ADDR"),
	})

	receiptDir := ""
	if st.Driver == "local" {
		receiptDir = envOr("RECEIPT_DIR", "./storage/receipts")
	}

	r := apphttp.NewRouter(apphttp.RouterConfig{
		Logger:     logger,
		Pipeline:   pipeline,
		Store:      st.Store,
		ReceiptDir: receiptDir,
	})

	_ = r.Run(":" + envOr("PORT", "8080"))
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
