package dashboardController

import (
	"context"
	"net/http"
	"time"

	"github.com/azazahmad08/kayesbackend/cache"
	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// GetStats serves the dashboard rollup, going through the Redis cache when one
// is configured. stats may be a few seconds stale; that is acceptable for an
// admin dashboard.
func GetStats(d *store.Dashboard, statsCache *cache.StatsCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if stats, ok := statsCache.Get(ctx); ok {
			c.JSON(http.StatusOK, stats)
			return
		}

		stats, err := d.Stats(ctx)
		if err != nil {
			logging.From(c).Error("dashboard stats failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		statsCache.Set(ctx, stats)
		c.JSON(http.StatusOK, stats)
	}
}
