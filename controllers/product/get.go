package productcontroller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

// parseProductIDParam reads the :id path param as a numeric id.
func parseProductIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id: " + raw})
		return 0, false
	}
	return uint(id), true
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductIDParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		product, err := cs.FindByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("get product failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetProductByCode looks a product up by its business key.
// URL param: /products/code/:code
func GetProductByCode(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "code is required"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		product, err := cs.FindByCode(ctx, code)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("get product by code failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
