package main

import (
	"github.com/SeakMengs/CertVerify/internal/config"
	"github.com/SeakMengs/CertVerify/internal/database"
	"github.com/SeakMengs/CertVerify/internal/env"
	"github.com/SeakMengs/CertVerify/internal/util"
)

func init() {
	env.LoadEnv()
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()

	logger.Infof("Database host: %s:%s/%s", cfg.DB.DB_HOST, cfg.DB.DB_PORT, cfg.DB.DB_DATABASE)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration completed")
}
