package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	*baseRepository
}

var _ CertificateStore = (*CertificateRepository)(nil)

func (cr CertificateRepository) GetById(ctx context.Context, id string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by id: %s", id)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := cr.db.WithContext(ctx).Model(&model.Certificate{}).Where("id = ?", id).First(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &certificate, nil
}

func (cr CertificateRepository) GetByNumber(ctx context.Context, number string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by number: %s", number)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := cr.db.WithContext(ctx).Model(&model.Certificate{}).Where("certificate_number = ?", number).First(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &certificate, nil
}

// Create inserts the certificate. The id is always generated by BaseModel.
// A unique index violation is reported as ErrDuplicateCertificateNumber.
func (cr CertificateRepository) Create(ctx context.Context, certificate *model.Certificate) (*model.Certificate, error) {
	cr.logger.Debugf("Create certificate: %s", certificate.CertificateNumber)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := cr.db.WithContext(ctx).Model(&model.Certificate{}).Create(certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCertificateNumber
		}
		return nil, err
	}

	return certificate, nil
}

func (cr CertificateRepository) List(ctx context.Context) ([]model.Certificate, error) {
	cr.logger.Debug("List certificates")

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	certificates := []model.Certificate{}
	if err := cr.db.WithContext(ctx).Model(&model.Certificate{}).Find(&certificates).Error; err != nil {
		return nil, err
	}

	return certificates, nil
}

// Update writes only the fields present in update. A missing id yields nil.
func (cr CertificateRepository) Update(ctx context.Context, id string, update model.CertificateUpdate) (*model.Certificate, error) {
	cr.logger.Debugf("Update certificate: %s", id)

	existing, err := cr.GetById(ctx, id)
	if err != nil || existing == nil {
		return existing, err
	}

	if update.IsEmpty() {
		return existing, nil
	}

	cols, err := update.Columns()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := cr.db.WithContext(ctx).Model(&model.Certificate{}).Where("id = ?", id).Updates(cols).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCertificateNumber
		}
		return nil, err
	}

	return cr.GetById(ctx, id)
}

func (cr CertificateRepository) Delete(ctx context.Context, id string) (bool, error) {
	cr.logger.Debugf("Delete certificate: %s", id)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := cr.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Certificate{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
