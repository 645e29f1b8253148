package routes

import (
	orderControllers "github.com/azazahmad08/kayesbackend/controllers/order"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	{
		// Capture a new order (server-side pricing)
		orders.POST("", orderControllers.CreateOrderHandler(d.Orders))

		// Fetch all orders (admin)
		orders.GET("", orderControllers.GetAllOrdersHandler(d.OrderStore))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.OrderStore))

		// Replace the mutable part of an order
		orders.PUT("/:orderID", orderControllers.UpdateOrderHandler(d.Orders))

		// Move an order through the status enum
		orders.PATCH("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Orders))

		// Delete an order outright
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(d.OrderStore))
	}
}
