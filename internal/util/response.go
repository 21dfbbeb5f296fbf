package util

import (
	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func BuildResponseFailed(message string, err any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	// err may be typed as any while holding an error
	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}

	return Response{
		Message: message,
		Errors:  err,
	}
}

// ResponseFailed writes {message, errors}. errors is omitted when err is nil.
func ResponseFailed(ctx *gin.Context, code int, message string, err any) {
	ctx.JSON(code, BuildResponseFailed(message, err))
	ctx.Abort()
}

// ResponseMessage writes a body holding only a message.
func ResponseMessage(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, Response{Message: message})
}
