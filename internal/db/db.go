package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/config"
	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate cria as tabelas e instala a exclusion constraint que impede
// dois agendamentos ativos sobrepostos para o mesmo dentista.
func Migrate(db *gorm.DB, log *logrus.Logger) error {
	if err := db.AutoMigrate(
		&models.Patient{},
		&models.Dentist{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// sem btree_gist a checagem transacional continua valendo
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.WithError(err).Warn("btree_gist unavailable, skipping overlap constraint")
		return nil
	}

	err := db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
			) THEN
				ALTER TABLE appointments
				ADD CONSTRAINT appointments_no_overlap
				EXCLUDE USING gist (
					dentist_id WITH =,
					tstzrange(start_time, end_time, '[)') WITH &&
				)
				WHERE (status IN ('SCHEDULED', 'CONFIRMED', 'IN_PROGRESS'));
			END IF;
		END
		$$;
	`).Error
	if err != nil {
		log.WithError(err).Warn("failed to install overlap constraint")
	}

	return nil
}
