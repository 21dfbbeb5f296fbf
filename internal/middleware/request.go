package middleware

import (
	"time"

	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/gin-gonic/gin"
)

const requestIdKey = "requestId"

// RequestIDMiddleware reuses the client's X-Request-ID or generates one, and
// echoes it on the response.
func (m Middleware) RequestIDMiddleware(ctx *gin.Context) {
	requestId := ctx.GetHeader(constant.REQUEST_ID_HEADER)
	if requestId == "" || len(requestId) > 128 {
		requestId = util.GenerateRequestID()
	}

	ctx.Set(requestIdKey, requestId)
	ctx.Header(constant.REQUEST_ID_HEADER, requestId)
	ctx.Next()
}

func (m Middleware) RequestLoggerMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()

	status := ctx.Writer.Status()
	fields := []any{
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", status,
		"latency", time.Since(start),
		"requestId", ctx.GetString(requestIdKey),
	}

	switch {
	case status >= 500:
		m.app.Logger.Errorw("request", fields...)
	case status >= 400 && status != 404:
		m.app.Logger.Warnw("request", fields...)
	default:
		m.app.Logger.Infow("request", fields...)
	}
}
