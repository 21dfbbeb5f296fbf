package database

import (
	"context"
	"fmt"
	"time"

	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/repository"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleCertificates are inserted into an empty store on startup.
func SampleCertificates() []model.Certificate {
	return []model.Certificate{
		{
			CertificateNumber: "GZ2024001",
			RecipientName:     "John Smith",
			CourseName:        "Advanced Digital Marketing",
			IssueDate:         date(2024, time.January, 15),
			CompletionDate:    date(2024, time.January, 10),
			Grade:             strPtr("A"),
			InstructorName:    strPtr("Dr. Sarah Johnson"),
			Status:            model.CertificateStatusActive,
		},
		{
			CertificateNumber: "GZ2024002",
			RecipientName:     "Emily Davis",
			CourseName:        "Data Analytics Fundamentals",
			IssueDate:         date(2024, time.February, 20),
			CompletionDate:    date(2024, time.February, 18),
			Grade:             strPtr("B+"),
			InstructorName:    strPtr("Prof. Michael Chen"),
			Status:            model.CertificateStatusActive,
		},
		{
			CertificateNumber: "GZ2024003",
			RecipientName:     "Robert Wilson",
			CourseName:        "Project Management Professional",
			IssueDate:         date(2024, time.March, 10),
			CompletionDate:    date(2024, time.March, 8),
			Grade:             strPtr("A-"),
			InstructorName:    strPtr("Dr. Lisa Rodriguez"),
			Status:            model.CertificateStatusActive,
		},
	}
}

// Seed inserts the sample certificates when the store holds none.
// It returns the number of certificates inserted.
func Seed(ctx context.Context, store repository.CertificateStore, logger *zap.SugaredLogger) (int, error) {
	existing, err := store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing certificates: %w", err)
	}

	if len(existing) > 0 {
		logger.Info("Database already has certificates, skipping seed")
		return 0, nil
	}

	samples := SampleCertificates()
	for i := range samples {
		if _, err := store.Create(ctx, &samples[i]); err != nil {
			return i, fmt.Errorf("failed to seed certificate %s: %w", samples[i].CertificateNumber, err)
		}
	}

	logger.Infof("Seeded %d certificates", len(samples))
	return len(samples), nil
}
