package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCodePNG(t *testing.T) {
	png, err := GenerateQRCodePNG("https://certs.example.com/?certificateNumber=GZ2024001", 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}

func TestVerificationURL(t *testing.T) {
	assert.Equal(t,
		"https://certs.example.com/?certificateNumber=GZ+2024%2F1",
		VerificationURL("https://certs.example.com", "GZ 2024/1"),
	)
}
