package main

import (
	"fmt"

	"github.com/SeakMengs/CertVerify/internal/config"
	"github.com/SeakMengs/CertVerify/internal/database"
	"github.com/SeakMengs/CertVerify/internal/repository"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "certctl",
	Short:         "Certificate administration from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(importCmd, templateCmd, seedCmd)
}

// openStore connects and migrates. The returned func closes the connection.
func openStore() (repository.CertificateStore, *zap.SugaredLogger, func(), error) {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to migrate: %w", err)
	}

	closeFn := func() {
		if sqlDb, err := db.DB(); err == nil {
			sqlDb.Close()
		}
		logger.Sync()
	}

	return repository.NewRepository(db, logger).Certificate, logger, closeFn, nil
}
