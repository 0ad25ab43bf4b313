package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aula/internal/shared/constants"
)

// SubscriptionModel is the database persistence model for subscription
// records mirrored from the payment provider.
type SubscriptionModel struct {
	ID                     uint   `gorm:"primarykey"`
	UserID                 uint   `gorm:"not null;index:idx_user_subscription"`
	Status                 string `gorm:"not null;size:20;index:idx_status"`
	PlanID                 string `gorm:"not null;size:64"`
	ProviderCustomerID     string `gorm:"not null;size:64;index:idx_provider_customer"`
	ProviderSubscriptionID string `gorm:"uniqueIndex;not null;size:64"`
	CurrentPeriodEnd       time.Time
	LastPaymentAt          *time.Time
	Metadata               datatypes.JSON
	Version                int `gorm:"not null;default:1"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}

// BeforeUpdate increments the version for optimistic locking.
func (s *SubscriptionModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", s.Version+1)
	return nil
}
