package middleware

import (
	appcontext "github.com/SeakMengs/CertVerify/internal/app_context"
)

type Middleware struct {
	app *appcontext.Application
}

func NewMiddleware(app *appcontext.Application) *Middleware {
	return &Middleware{app: app}
}
