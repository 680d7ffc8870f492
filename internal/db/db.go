package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/config"
	"github.com/devansh21640/Kanoonwise-sub002/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.LawyerProfile{},
		&models.ClientProfile{},
		&models.Appointment{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Double-booking guard: at most one live appointment per lawyer+slot.
	// Partial index, so rejected/completed/cancelled rows never block a slot.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uidx_appointments_lawyer_slot
        ON appointments (lawyer_id, scheduled_time)
        WHERE status IN ('pending', 'accepted')
    `)

	return db
}
