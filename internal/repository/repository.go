package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/CertVerify/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrDuplicateCertificateNumber = errors.New("certificate number already exists")

// CertificateStore is the certificate record store. Lookups and Update return
// a nil certificate with a nil error when the record does not exist; Delete
// reports whether a row was removed. Errors are storage faults only.
type CertificateStore interface {
	GetById(ctx context.Context, id string) (*model.Certificate, error)
	GetByNumber(ctx context.Context, number string) (*model.Certificate, error)
	Create(ctx context.Context, certificate *model.Certificate) (*model.Certificate, error)
	List(ctx context.Context) ([]model.Certificate, error)
	Update(ctx context.Context, id string, update model.CertificateUpdate) (*model.Certificate, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// r.DB.Transaction(func(tx *gorm.DB) error { ... })
	DB          *gorm.DB
	Certificate *CertificateRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:          db,
		Certificate: &CertificateRepository{baseRepository: br},
	}
}
