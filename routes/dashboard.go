package routes

import (
	dashboardController "github.com/azazahmad08/kayesbackend/controllers/dashboard"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(r *gin.Engine, d Deps) {
	r.GET("/dashboard", dashboardController.GetStats(d.Dashboard, d.Stats))
}
