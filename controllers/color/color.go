package colorController

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/models"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

type ColorRequest struct {
	Name string `json:"name" binding:"required"`
}

func GetColors(cs *store.ColorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		colors, err := cs.List(ctx)
		if err != nil {
			logging.From(c).Error("list colors failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, colors)
	}
}

func CreateColor(cs *store.ColorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ColorRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		color := &models.Color{Name: req.Name}
		err := cs.Create(ctx, color)
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "color already exists"})
			return
		}
		if err != nil {
			logging.From(c).Error("create color failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, color)
	}
}

func UpdateColor(cs *store.ColorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid color id"})
			return
		}
		var req ColorRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		color, err := cs.Update(ctx, uint(id), req.Name)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "color not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("update color failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, color)
	}
}

func DeleteColor(cs *store.ColorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid color id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		err = cs.Delete(ctx, uint(id))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "color not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("delete color failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "color deleted"})
	}
}
