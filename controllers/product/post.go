package productcontroller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/models"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// ProductRequest is the JSON body for creating or updating a product.
type ProductRequest struct {
	Code               string   `json:"code"`
	Title              string   `json:"title"`
	Price              *float64 `json:"price"`
	PriceAfterDiscount *float64 `json:"priceAfterDiscount"`
	ImageURL           string   `json:"imageUrl"`
	Categories         []string `json:"categories"`
	Sizes              []string `json:"sizes"`
}

// validate checks required fields, price bounds and the category vocabulary.
func (r *ProductRequest) validate() error {
	r.Code = strings.TrimSpace(r.Code)
	r.Title = strings.TrimSpace(r.Title)
	if r.Code == "" {
		return errors.New("code is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Price == nil || *r.Price < 0 {
		return errors.New("price must be a non-negative number")
	}
	if r.PriceAfterDiscount != nil {
		if *r.PriceAfterDiscount < 0 {
			return errors.New("priceAfterDiscount must be non-negative")
		}
		if *r.PriceAfterDiscount > *r.Price {
			return errors.New("priceAfterDiscount cannot exceed price")
		}
	}
	for _, cat := range r.Categories {
		if !models.CategoryAllowed(cat) {
			return fmt.Errorf("unknown category: %q", cat)
		}
	}
	return nil
}

func (r *ProductRequest) toModel() *models.Product {
	return &models.Product{
		Code:               r.Code,
		Title:              r.Title,
		Price:              *r.Price,
		PriceAfterDiscount: r.PriceAfterDiscount,
		ImageURL:           r.ImageURL,
		Categories:         models.StringList(r.Categories),
		Sizes:              models.StringList(r.Sizes),
	}
}

// CreateProduct adds a product to the catalog. The code is a unique business key.
func CreateProduct(cs *store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		product := req.toModel()
		err := cs.Create(ctx, product)
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "product code already exists"})
			return
		}
		if err != nil {
			logging.From(c).Error("create product failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
