package routes

import (
	colorController "github.com/azazahmad08/kayesbackend/controllers/color"
	"github.com/gin-gonic/gin"
)

func SetupColorRoutes(r *gin.Engine, d Deps) {
	colors := r.Group("/colors")
	{
		colors.GET("", colorController.GetColors(d.Colors))
		colors.POST("", colorController.CreateColor(d.Colors))
		colors.PUT("/:id", colorController.UpdateColor(d.Colors))
		colors.DELETE("/:id", colorController.DeleteColor(d.Colors))
	}
}
