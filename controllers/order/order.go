package orderControllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/orders"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

const requestTimeout = 5 * time.Second

// parseOrderID reads the :orderID path param as a numeric id.
func parseOrderID(c *gin.Context) (uint, bool) {
	raw := c.Param("orderID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id: " + raw})
		return 0, false
	}
	return uint(id), true
}

// respondOrderError maps workflow errors onto HTTP statuses. notFoundStatus
// differs by operation: a missing product during creation is a client mistake
// (400), a missing order on lookup is 404.
func respondOrderError(c *gin.Context, err error, notFoundStatus int) {
	switch {
	case orders.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case orders.IsNotFound(err):
		c.JSON(notFoundStatus, gin.H{"message": err.Error()})
	default:
		logging.From(c).Error("order request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// -------- Handlers --------

// CreateOrderHandler captures a new order: the cart is priced server-side and
// persisted all-or-nothing.
func CreateOrderHandler(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orders.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := svc.CreateOrder(ctx, req)
		if err != nil {
			respondOrderError(c, err, http.StatusBadRequest)
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

func GetAllOrdersHandler(st *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		list, err := st.List(ctx)
		if err != nil {
			logging.From(c).Error("list orders failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetOrderByIDHandler(st *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := st.GetByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("get order failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderHandler replaces the mutable part of an order. Line-items and the
// computed total stay as captured.
func UpdateOrderHandler(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		var req orders.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := svc.ReplaceOrder(ctx, id, req)
		if err != nil {
			respondOrderError(c, err, http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler moves an order through the status enum.
func UpdateOrderStatusHandler(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "status is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		order, err := svc.SetStatus(ctx, id, req.Status)
		if err != nil {
			respondOrderError(c, err, http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrderHandler(st *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOrderID(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		err := st.Delete(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
			return
		}
		if err != nil {
			logging.From(c).Error("delete order failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
