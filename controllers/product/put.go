package productcontroller

import (
	"context"
	"errors"
	"net/http"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

// UpdateProduct replaces a product's mutable fields. The code is an immutable
// business key; a request that tries to change it is rejected.
func UpdateProduct(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseProductIDParam(c)
		if !ok {
			return
		}
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if err := req.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		existing, err := cs.FindByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("find product failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		if req.Code != existing.Code {
			c.JSON(http.StatusBadRequest, gin.H{"message": "code is immutable"})
			return
		}

		product := req.toModel()
		product.ID = id
		if err := cs.Update(ctx, product); err != nil {
			logging.From(c).Error("update product failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
