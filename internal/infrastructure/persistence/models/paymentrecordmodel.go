package models

import (
	"time"

	"aula/internal/shared/constants"
)

// PaymentRecordModel is the append-only payment log. Records are never
// updated or deleted.
type PaymentRecordModel struct {
	ID                     uint   `gorm:"primarykey"`
	UserID                 uint   `gorm:"not null;index:idx_user_payment"`
	ProviderSubscriptionID string `gorm:"not null;size:64"`
	ProviderInvoiceID      string `gorm:"uniqueIndex;not null;size:64"`
	AmountCents            int64  `gorm:"not null"`
	Currency               string `gorm:"not null;size:8"`
	PaidAt                 time.Time
	CreatedAt              time.Time
}

func (PaymentRecordModel) TableName() string {
	return constants.TablePayments
}
