package routes

import (
	"velora_back_end/internal/admingate"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/handlers/admin"
	"velora_back_end/internal/handlers/user"
	"velora_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, gate *admingate.Gate) {
	r.Use(middleware.RequestID())

	api := r.Group("/api")

	// Auth (fournisseur d'identité externe)
	api.GET("/auth/:provider", handlers.BeginAuth)
	api.GET("/auth/:provider/callback", handlers.CallbackAuth)
	api.GET("/me", middleware.AuthRequired(), user.GetMe)

	// Panier — session invitée acceptée
	cart := api.Group("/cart", middleware.OptionalAuth())
	cart.GET("", user.GetCart)
	cart.POST("/add", user.AddToCart)
	cart.PUT("/:productId", user.UpdateQuantity)
	cart.DELETE("/clear", user.ClearCart)
	cart.DELETE("/:productId", user.RemoveFromCart)
	cart.GET("/ws", user.CartWebSocket)

	// Checkout et commandes
	api.POST("/checkout", middleware.OptionalAuth(), user.Checkout)
	api.GET("/orders/:id", user.GetOrder)
	api.GET("/orders/:id/qr", user.GetOrderQR)

	// Essayage virtuel (renvoi externe)
	api.GET("/tryon", user.VirtualTryOn)

	// Admin
	api.POST("/admin/login", admin.Login)
	api.POST("/admin/logout", admin.Logout)

	orders := api.Group("/admin/orders", middleware.AdminRequired(gate))
	orders.GET("", admin.ListOrders)
	orders.GET("/export", admin.ExportOrders)
	orders.PUT("/:id/status", admin.UpdateOrderStatus)
	orders.DELETE("/:id", admin.RemoveOrder)
}
