package main

import (
	"context"

	appcontext "github.com/SeakMengs/CertVerify/internal/app_context"
	"github.com/SeakMengs/CertVerify/internal/config"
	"github.com/SeakMengs/CertVerify/internal/database"
	"github.com/SeakMengs/CertVerify/internal/env"
	"github.com/SeakMengs/CertVerify/internal/repository"
	"github.com/SeakMengs/CertVerify/internal/route"
	"github.com/SeakMengs/CertVerify/internal/service"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/gin-gonic/gin"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

// Startup runs once, in order: connect, migrate, seed, routes, listen.
func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected")

	if cfg.Startup.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Panic(err)
		}
		logger.Info("Database migrated")
	}

	repo := repository.NewRepository(db, logger)

	// a failed seed leaves the api usable
	if cfg.Startup.Seed {
		if _, err := database.Seed(context.Background(), repo.Certificate, logger); err != nil {
			logger.Errorf("Failed to seed database: %v", err)
		}
	}

	app := appcontext.Application{
		Config:      &cfg,
		Logger:      logger,
		Repository:  repo,
		Certificate: service.NewCertificateService(repo.Certificate, logger),
	}

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := route.NewRouter(&app)
	if err != nil {
		logger.Panic(err)
	}

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
