package models

import (
	"time"

	"gorm.io/gorm"

	"aula/internal/shared/constants"
)

// NotificationModel is the database persistence model for user notifications.
type NotificationModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;index:idx_user_notification"`
	Type       string `gorm:"not null;size:32"`
	Title      string `gorm:"not null;size:255"`
	Content    string `gorm:"type:text"`
	ReadStatus string `gorm:"not null;default:unread;size:10;index:idx_read_status"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
