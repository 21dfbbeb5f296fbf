package util

import (
	"errors"
	"testing"

	"github.com/SeakMengs/CertVerify/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() model.CertificateInput {
	return model.CertificateInput{
		CertificateNumber: "GZ2024004",
		RecipientName:     "Jane Doe",
		CourseName:        "Web Development Fundamentals",
		IssueDate:         "2024-01-20",
		CompletionDate:    "2024-01-15",
	}
}

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, v.Struct(validInput()))

		in := validInput()
		in.Status = "expired"
		assert.NoError(t, v.Struct(in))
	})

	t.Run("missing required field reports json name", func(t *testing.T) {
		in := validInput()
		in.RecipientName = ""

		msgs := GenerateErrorMessages(v.Struct(in))
		require.Len(t, msgs, 1)
		assert.Equal(t, "recipientName", msgs[0].Field)
		assert.Equal(t, "recipientName is required", msgs[0].Message)
	})

	t.Run("whitespace only", func(t *testing.T) {
		in := validInput()
		in.CourseName = "   "

		msgs := GenerateErrorMessages(v.Struct(in))
		require.Len(t, msgs, 1)
		assert.Equal(t, "courseName", msgs[0].Field)
	})

	t.Run("bad date and status", func(t *testing.T) {
		in := validInput()
		in.IssueDate = "20/01/2024"
		in.Status = "pending"

		msgs := GenerateErrorMessages(v.Struct(in))
		require.Len(t, msgs, 2)
		assert.Equal(t, "issueDate must be a valid date (YYYY-MM-DD)", msgs[0].Message)
		assert.Equal(t, "status must be one of active, revoked, expired", msgs[1].Message)
	})

	t.Run("partial update skips absent fields", func(t *testing.T) {
		status := "revoked"
		assert.NoError(t, v.Struct(model.CertificateUpdate{Status: &status}))

		bad := "archived"
		assert.Error(t, v.Struct(model.CertificateUpdate{Status: &bad}))
	})
}

func TestGenerateErrorMessagesPlainError(t *testing.T) {
	msgs := GenerateErrorMessages(errors.New("boom"), "csv")
	require.Len(t, msgs, 1)
	assert.Equal(t, ApiError{Field: "csv", Message: "boom"}, msgs[0])

	assert.Equal(t, "boom", GenerateErrorMessagesAsString(errors.New("boom"), nil))
}
