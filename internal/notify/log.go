package notify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SentLog struct {
	ID           string    `gorm:"type:char(36);primaryKey"`
	ToAddr       string    `gorm:"column:to_addr;type:varchar(128);not null"`
	Body         string    `gorm:"column:body;type:varchar(1024);not null"`
	HasMedia     bool      `gorm:"column:has_media;not null"`
	Status       string    `gorm:"column:status;type:varchar(16);not null"` // sent|failed
	ErrorMessage *string   `gorm:"column:error_message;type:varchar(255)"`
	SentAt       time.Time `gorm:"column:sent_at;type:datetime(3);not null"`
}

func (SentLog) TableName() string { return "notification_logs" }

// Logged records every outbound send in the notification log. Log-write
// failures never change the outcome of the send itself.
type Logged struct {
	next   Dispatcher
	db     *gorm.DB
	logger *slog.Logger
}

func NewLogged(next Dispatcher, db *gorm.DB, logger *slog.Logger) *Logged {
	return &Logged{next: next, db: db, logger: logger}
}

func (d *Logged) Send(ctx context.Context, to, body string, mediaURLs []string) error {
	err := d.next.Send(ctx, to, body, mediaURLs)

	entry := SentLog{
		ID:       uuid.NewString(),
		ToAddr:   to,
		Body:     truncate(body, 1000),
		HasMedia: len(mediaURLs) > 0,
		Status:   "sent",
		SentAt:   time.Now(),
	}
	if err != nil {
		entry.Status = "failed"
		msg := truncate(err.Error(), 250)
		entry.ErrorMessage = &msg
	}

	if dbErr := d.db.WithContext(ctx).Create(&entry).Error; dbErr != nil {
		d.logger.ErrorContext(ctx, "failed to record notification", "to", to, "err", dbErr)
	}

	return err
}

// truncate cuts s to at most n bytes without leaving a split rune at the end;
// strict-mode MySQL would reject the row otherwise.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "")
}
