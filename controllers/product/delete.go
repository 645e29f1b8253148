package productcontroller

import (
	"context"
	"errors"
	"net/http"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

// DeleteProduct removes a product from the catalog. Orders that already
// snapshot the product keep their line-items.
func DeleteProduct(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductIDParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		err := cs.Delete(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("delete product failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
