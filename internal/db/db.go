package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salonika/salon-marketplace/internal/config"
	"github.com/salonika/salon-marketplace/internal/httperr"
	"github.com/salonika/salon-marketplace/internal/models"
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
		&models.Category{},
		&models.Salon{},
		&models.SalonPhoto{},
		&models.Service{},
		&models.Master{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := db.Exec(`
        UPDATE salons
        SET timezone = 'Asia/Tashkent'
        WHERE timezone IS NULL OR timezone = ''
    `).Error; err != nil {
		log.Fatalf("failed to backfill salon timezones: %v", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to install btree_gist: %v", err)
	}

	// Garantia no banco contra agendamentos sobrepostos do mesmo mestre:
	// mesmo que duas transações passem pelo teste de conflito, o EXCLUDE
	// rejeita a segunda (erro 23P01, mapeado para slot_taken). Sem a
	// constraint o servidor não sobe; só boot repetido (42710) é tolerado.
	if err := db.Exec(appointmentsOverlapConstraint).Error; err != nil &&
		!httperr.IsDuplicateObject(err) {
		log.Fatalf("failed to add overlap constraint: %v", err)
	}

	return db
}

// start_time/end_time são timestamptz (mapeamento do gorm para
// time.Time), então o range é tstzrange; tsrange não resolve.
const appointmentsOverlapConstraint = `
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_master_no_overlap
        EXCLUDE USING gist (
            master_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('pending', 'confirmed', 'completed'))
    `
