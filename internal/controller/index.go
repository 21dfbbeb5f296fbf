package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseMessage(ctx, http.StatusOK, "Welcome to the certificate verification api")
}

// Health pings the database when one is configured.
func (ic IndexController) Health(ctx *gin.Context) {
	if ic.app.Repository == nil || ic.app.Repository.DB == nil {
		util.ResponseMessage(ctx, http.StatusOK, "ok")
		return
	}

	sqlDb, err := ic.app.Repository.DB.DB()
	if err != nil {
		ic.app.Logger.Errorf("Health: %v", err)
		util.ResponseMessage(ctx, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := sqlDb.PingContext(pingCtx); err != nil {
		ic.app.Logger.Errorf("Health: database ping failed: %v", err)
		util.ResponseMessage(ctx, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	util.ResponseMessage(ctx, http.StatusOK, "ok")
}
