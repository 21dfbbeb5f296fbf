package database

import (
	"fmt"
	"time"

	"github.com/SeakMengs/CertVerify/internal/config"
	"github.com/SeakMengs/CertVerify/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB_HOST, cfg.DB_USERNAME, cfg.DB_PASSWORD, cfg.DB_DATABASE, cfg.DB_PORT, cfg.DB_SSLMODE)
}

// ConnectReturnGormDB opens PostgreSQL and applies the pool settings.
// Unique violations are translated to gorm.ErrDuplicatedKey.
func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	idleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		idleTime = 15 * time.Minute
	}

	sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDb.SetConnMaxIdleTime(idleTime)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Certificate{})
}
