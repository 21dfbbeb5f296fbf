package appcontext

import (
	"github.com/SeakMengs/CertVerify/internal/config"
	"github.com/SeakMengs/CertVerify/internal/repository"
	"github.com/SeakMengs/CertVerify/internal/service"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to the database. Nil when the app runs on
	// an in-memory store.
	Repository *repository.Repository

	// Certificate runs verification and admin operations over the store.
	Certificate *service.CertificateService
}
