package route

import (
	appcontext "github.com/SeakMengs/CertVerify/internal/app_context"
	"github.com/SeakMengs/CertVerify/internal/constant"
	"github.com/SeakMengs/CertVerify/internal/controller"
	"github.com/SeakMengs/CertVerify/internal/middleware"
	"github.com/SeakMengs/CertVerify/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(app *appcontext.Application) (*gin.Engine, error) {
	if err := util.RegisterGinValidations(); err != nil {
		return nil, err
	}

	_middleware := middleware.NewMiddleware(app)
	_controller := controller.NewController(app)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(_middleware.RequestIDMiddleware)
	r.Use(_middleware.RequestLoggerMiddleware)

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = app.Config.CORS.AllowOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Requested-With", "Accept", constant.REQUEST_ID_HEADER}
	corsConfig.ExposeHeaders = []string{constant.REQUEST_ID_HEADER, "Content-Disposition"}
	r.Use(cors.New(corsConfig))

	r.GET("/", _controller.Index.Index)
	r.GET("/healthz", _controller.Index.Health)

	rApi := r.Group("/api")
	Certificates(rApi, _controller.Certificate)

	return r, nil
}
