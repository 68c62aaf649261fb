package routes

import (
	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPix = "/pix"

func addPixRoutes(rg *gin.RouterGroup, pixHandler *handlers.PixHandler) {
	pix := rg.Group(PathPix)
	{
		pix.POST("", pixHandler.CreatePixCharge)
		pix.GET("/:id", pixHandler.GetPixChargeStatus)
	}
}
