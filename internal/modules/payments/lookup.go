package payments

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"upireceipts.in/app/internal/shared/apperr"
)

// Lookup resolves a transaction id to a completed payment record. A record
// that exists but is not done is indistinguishable from a missing one.
type Lookup interface {
	FindCompleted(ctx context.Context, transactionID string) (*Record, error)
}

type GormLookup struct {
	db *gorm.DB
}

func NewGormLookup(db *gorm.DB) *GormLookup {
	return &GormLookup{db: db}
}

func (l *GormLookup) FindCompleted(ctx context.Context, transactionID string) (*Record, error) {
	var rec Record
	err := l.db.WithContext(ctx).
		First(&rec, "transaction_id = ? AND done = ?", transactionID, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundErr("No completed payment found for this transaction ID.")
	}
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return &rec, nil
}
