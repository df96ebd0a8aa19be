package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/minimalism94/notification-svc/internal/repository"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "000001_create_notification_preferences",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.PreferenceModel{}); err != nil {
					return err
				}
				// The uniqueness constraint is the only guard against two
				// concurrent first-time upserts creating duplicate rows.
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_preferences_user_id ON notification_preferences (user_id)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.PreferenceModel{})
			},
		},
		{
			ID: "000002_create_notifications",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.NotificationModel{}); err != nil {
					return err
				}
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.NotificationModel{})
			},
		},
	})

	return m.Migrate()
}
