package route

import (
	"github.com/SeakMengs/CertVerify/internal/controller"
	"github.com/gin-gonic/gin"
)

// Certificates registers the certificate api. Paths are fixed for browser
// client compatibility, so they are not versioned.
func Certificates(r *gin.RouterGroup, cc *controller.CertificateController) {
	c := r.Group("/certificates")
	{
		// public
		c.POST("/verify", cc.Verify)

		// admin
		c.GET("", cc.List)
		c.POST("", cc.Create)
		c.POST("/bulk", cc.BulkImport)
		c.GET("/template", cc.Template)
		c.GET("/export", cc.Export)
		c.PATCH("/:id", cc.Update)
		c.DELETE("/:id", cc.Delete)
		c.GET("/:id/qrcode", cc.QRCode)
	}
}
