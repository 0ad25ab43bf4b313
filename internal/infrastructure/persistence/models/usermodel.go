package models

import (
	"time"

	"gorm.io/gorm"

	"aula/internal/shared/constants"
)

// UserModel is the database persistence model for users. It is the
// anti-corruption layer between the domain aggregate and the schema.
type UserModel struct {
	ID                 uint    `gorm:"primarykey"`
	UUID               string  `gorm:"uniqueIndex;not null;size:36"`
	Email              string  `gorm:"uniqueIndex;not null;size:255"`
	Name               string  `gorm:"not null;size:100"`
	Role               string  `gorm:"not null;default:student;size:20;index:idx_role"`
	Status             string  `gorm:"not null;default:active;size:20"`
	ProviderCustomerID *string `gorm:"uniqueIndex;size:64"`
	PasswordHash       *string `gorm:"size:100"`
	Version            int     `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}

// BeforeUpdate increments the version for optimistic locking.
func (u *UserModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", u.Version+1)
	return nil
}
