// Package migration applies the database schema with gorm AutoMigrate.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"aula/internal/infrastructure/persistence/models"
	"aula/internal/shared/logger"
)

// Models returns every persistence model in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SubscriptionModel{},
		&models.PaymentRecordModel{},
		&models.WebhookEventModel{},
		&models.NotificationModel{},
	}
}

// Run migrates the schema for all persistence models.
func Run(db *gorm.DB, log logger.Interface) error {
	targets := Models()
	log.Infow("starting database migration", "models_count", len(targets))

	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}
