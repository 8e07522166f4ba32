package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/hotinfo/models"
)

// Migrations brings the schema up to date. The transferred flag on intakes
// is provisioned here, eagerly, so the transcription service never needs a
// lazy column-creation path.
func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202506010001_intake_and_cases",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Intake{}, &models.Case{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("cases", "intakes")
			},
		},
		{
			ID: "202506010002_route_registry",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Route{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("routes")
			},
		},
		{
			ID: "202506010003_error_logs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.ErrorLog{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("error_logs")
			},
		},
	})

	return m.Migrate()
}
