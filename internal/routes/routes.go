package routes

import (
	pa "ecartx_back_end/internal/handlers/payement"
	"ecartx_back_end/internal/handlers/product"
	"ecartx_back_end/internal/handlers/user"
	"ecartx_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Catalogue (public)
	api.GET("/products", product.ListProducts)
	api.GET("/products/deals", product.GetDeals)
	api.GET("/products/filters", product.GetProductFilters)
	api.GET("/products/:id", product.GetProduct)

	// Auth mockée
	auth := api.Group("/auth")
	auth.POST("/register", user.Register)
	auth.POST("/login", middleware.LoginRateLimit(), user.Login)
	auth.POST("/otp/request", user.RequestOTP)
	auth.POST("/otp/verify", user.VerifyOTP)

	// Routes protégées
	authed := api.Group("")
	authed.Use(middleware.AuthRequired())

	authed.GET("/cart", user.GetCart)
	authed.GET("/cart/ws", user.CartWebSocket)
	authed.POST("/cart/add", user.AddToCart)
	authed.POST("/cart/increment/:productId", user.IncrementCartItem)
	authed.POST("/cart/decrement/:productId", user.DecrementCartItem)
	authed.DELETE("/cart/:productId", user.RemoveFromCart)
	authed.DELETE("/cart", user.ClearCart)

	authed.GET("/wishlist", user.GetWishlist)
	authed.POST("/wishlist", user.AddToWishlist)
	authed.DELETE("/wishlist/:productId", user.RemoveFromWishlist)
	authed.DELETE("/wishlist", user.ClearWishlist)

	authed.GET("/browse-state", user.GetBrowseState)
	authed.PUT("/browse-state", user.SaveBrowseState)

	authed.GET("/orders", user.GetOrders)

	authed.POST("/notifications/token", user.RegisterPushToken)
	authed.POST("/notifications/test", user.TestNotification)

	authed.POST("/payment/checkout", pa.Checkout)
}
