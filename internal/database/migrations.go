package database

import (
	"yukmarkazi/internal/models"

	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.DriverProfile{},
		&models.Cargo{},
		&models.CargoReview{},
		&models.Advertisement{},
		&models.ContactMessage{},
	)
	if err != nil {
		return err
	}

	// Enum columns get check constraints so bad values can't sneak in
	// through raw SQL or older deployments.
	constraints := []string{
		`ALTER TABLE cargos DROP CONSTRAINT IF EXISTS cargos_status_check`,
		`ALTER TABLE cargos ADD CONSTRAINT cargos_status_check CHECK (status IN ('InProgress', 'EnRoute', 'Delivered'))`,
		`ALTER TABLE cargos DROP CONSTRAINT IF EXISTS cargos_vehicle_type_check`,
		`ALTER TABLE cargos ADD CONSTRAINT cargos_vehicle_type_check CHECK (vehicle_type IN ('Bortli', 'Tentli', 'Refrigatorli', 'Samosval', 'Shalanda', 'Konteyner', 'Ploshadka'))`,
		`ALTER TABLE advertisements DROP CONSTRAINT IF EXISTS advertisements_status_check`,
		`ALTER TABLE advertisements ADD CONSTRAINT advertisements_status_check CHECK (status IN ('UnderReview', 'Approved', 'Rejected'))`,
		`ALTER TABLE advertisements DROP CONSTRAINT IF EXISTS advertisements_duration_check`,
		`ALTER TABLE advertisements ADD CONSTRAINT advertisements_duration_check CHECK (duration_days IN (1, 3, 7, 14, 30))`,
	}
	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	if db.Migrator().HasTable(&models.User{}) {
		if err := db.Exec(`ALTER TABLE users ADD COLUMN IF NOT EXISTS is_staff boolean DEFAULT false`).Error; err != nil {
			return err
		}
	}

	return nil
}
