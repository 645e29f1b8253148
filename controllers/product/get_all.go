package productcontroller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

// GetProducts lists the catalog with optional filtering and sorting.
// Query params: search, category, min_price, max_price, sort_by, order.
func GetProducts(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			SortBy:   c.DefaultQuery("sort_by", "created_at"),
			Order:    c.DefaultQuery("order", "desc"),
		}

		if raw := c.Query("min_price"); raw != "" {
			mp, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if raw := c.Query("max_price"); raw != "" {
			mp, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		products, err := cs.List(ctx, filter)
		if err != nil {
			logging.From(c).Error("list products failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
