package service

import (
	"errors"

	"github.com/SeakMengs/CertVerify/internal/repository"
)

var (
	ErrCertificateNotFound        = errors.New("certificate not found")
	ErrDuplicateCertificateNumber = repository.ErrDuplicateCertificateNumber
)

// ValidationError wraps a failed schema check of client input.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }
