package util

import (
	"github.com/SeakMengs/CertVerify/internal/constant"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateRequestID returns a url-safe id for the request id header.
func GenerateRequestID() string {
	id, err := GenerateNChar(constant.REQUEST_ID_LENGTH)
	if err != nil {
		// gonanoid only fails on a non-positive length
		return "unknown"
	}
	return id
}
