package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/repository"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CertificateService struct {
	store     repository.CertificateStore
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func NewCertificateService(store repository.CertificateStore, logger *zap.SugaredLogger) *CertificateService {
	if logger == nil {
		logger = util.NewNopLogger()
	}

	return &CertificateService{store: store, logger: logger, validator: util.NewValidator()}
}

type VerifyResult struct {
	Status      constant.VerificationStatus
	Certificate *model.Certificate
}

// Verify classifies a certificate number. Blank input never reaches the
// store. Revoked and expired records are returned with an inactive status.
func (s *CertificateService) Verify(ctx context.Context, number string) VerifyResult {
	number = strings.TrimSpace(number)
	if number == "" {
		return VerifyResult{Status: constant.VerificationInvalidInput}
	}

	certificate, err := s.store.GetByNumber(ctx, number)
	if err != nil {
		s.logger.Errorf("Verify certificate %s: %v", number, err)
		return VerifyResult{Status: constant.VerificationError}
	}

	if certificate == nil {
		s.logger.Debugf("Verify certificate %s: not found", number)
		return VerifyResult{Status: constant.VerificationNotFound}
	}

	if !certificate.IsActive() {
		return VerifyResult{Status: constant.VerificationInactive, Certificate: certificate}
	}

	return VerifyResult{Status: constant.VerificationValid, Certificate: certificate}
}

func (s *CertificateService) List(ctx context.Context) ([]model.Certificate, error) {
	return s.store.List(ctx)
}

func (s *CertificateService) Get(ctx context.Context, id string) (*model.Certificate, error) {
	certificate, err := s.store.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}
	return certificate, nil
}

// Create validates the input, checks the number is unused and inserts.
// The check and the insert are two separate store calls, so two concurrent
// creates with one number can both pass the check; the store's unique
// constraint rejects the second insert.
func (s *CertificateService) Create(ctx context.Context, in model.CertificateInput) (*model.Certificate, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, &ValidationError{Err: err}
	}

	certificate, err := in.ToModel()
	if err != nil {
		return nil, &ValidationError{Err: err}
	}

	existing, err := s.store.GetByNumber(ctx, certificate.CertificateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check certificate number: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateCertificateNumber
	}

	created, err := s.store.Create(ctx, certificate)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCertificateNumber) {
			return nil, ErrDuplicateCertificateNumber
		}
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	s.logger.Infof("Created certificate %s (%s)", created.CertificateNumber, created.ID)
	return created, nil
}

func (s *CertificateService) Update(ctx context.Context, id string, update model.CertificateUpdate) (*model.Certificate, error) {
	if err := s.validator.Struct(update); err != nil {
		return nil, &ValidationError{Err: err}
	}

	certificate, err := s.store.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCertificateNumber) {
			return nil, ErrDuplicateCertificateNumber
		}
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}
	if certificate == nil {
		return nil, ErrCertificateNotFound
	}

	return certificate, nil
}

// Delete reports whether a certificate was removed.
func (s *CertificateService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete certificate: %w", err)
	}
	return deleted, nil
}
