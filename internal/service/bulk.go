package service

import (
	"context"
	"errors"

	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/SeakMengs/CertVerify/internal/util"
)

type BulkFailure struct {
	// Row is the 1-based line of the CSV file, header included.
	Row   int                    `json:"row"`
	Error string                 `json:"error"`
	Data  model.CertificateInput `json:"data"`
}

type BulkResult struct {
	Success int           `json:"success"`
	Failed  []BulkFailure `json:"failed"`
}

// BulkImport creates the parsed rows one at a time, in order. A failing row
// is recorded and the batch moves on.
func (s *CertificateService) BulkImport(ctx context.Context, inputs []model.CertificateInput) BulkResult {
	result := BulkResult{Failed: []BulkFailure{}}

	for i, in := range inputs {
		if _, err := s.Create(ctx, in); err != nil {
			result.Failed = append(result.Failed, BulkFailure{
				Row:   i + 2,
				Error: bulkErrorMessage(err),
				Data:  in,
			})
			continue
		}
		result.Success++
	}

	s.logger.Infof("Bulk import finished: %d created, %d failed", result.Success, len(result.Failed))
	return result
}

func bulkErrorMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return util.GenerateErrorMessagesAsString(ve.Err, nil)
	}
	if errors.Is(err, ErrDuplicateCertificateNumber) {
		return "Certificate number already exists"
	}
	return err.Error()
}
