package util

import "go.uber.org/zap"

func NewLogger(env string) *zap.SugaredLogger {
	if env == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	return zap.Must(zap.NewDevelopment()).Sugar()
}

// NewNopLogger is used by tests and by callers that pass no logger.
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
