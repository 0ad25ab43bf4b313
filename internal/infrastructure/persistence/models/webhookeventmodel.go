package models

import (
	"time"

	"aula/internal/shared/constants"
)

// WebhookEventModel is the durable idempotency ledger for provider events.
// The unique index on EventID is what makes replays observable as inserts
// that fail with a duplicate key error.
type WebhookEventModel struct {
	ID          uint   `gorm:"primarykey"`
	EventID     string `gorm:"uniqueIndex;not null;size:64"`
	EventType   string `gorm:"not null;size:64"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

func (WebhookEventModel) TableName() string {
	return constants.TableWebhookEvents
}
