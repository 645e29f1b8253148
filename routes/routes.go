package routes

import (
	"github.com/azazahmad08/kayesbackend/cache"
	"github.com/azazahmad08/kayesbackend/orders"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

// Deps carries the explicitly constructed dependencies the route groups need.
type Deps struct {
	Orders     *orders.Service
	OrderStore *store.OrderStore
	Catalog    *store.CatalogStore
	Colors     *store.ColorStore
	Dashboard  *store.Dashboard
	Stats      *cache.StatsCache
	UploadsDir string
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupProductRoutes(r, d)
	SetupOrderRoutes(r, d)
	SetupColorRoutes(r, d)
	SetupDashboardRoutes(r, d)
}
