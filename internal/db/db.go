package db

import (
	"log"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/config"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
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
		&models.Studio{},
		&models.User{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.Client{},
		&models.Reservation{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.DiscountCode{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One active reservation per slot. The partial index is what actually
	// serializes concurrent bookings; the repository pre-check only exists to
	// answer with a clean conflict before the insert.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_active_slot
        ON reservations (studio_id, date, time_slot)
        WHERE status IN ('pending', 'confirmed')
    `).Error; err != nil {
		log.Fatalf("failed to create reservation slot index: %v", err)
	}

	db.Exec(`
        UPDATE studios
        SET timezone = 'Europe/Lisbon'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
