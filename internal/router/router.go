// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoply/storefront/internal/config"
	"github.com/shoply/storefront/internal/handlers"
	"github.com/shoply/storefront/internal/middleware"
	"github.com/shoply/storefront/internal/services"
	"github.com/shoply/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			// Admin routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				protected.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Category routes
		api.GET("/categories", productHandler.GetCategories)

		// Order routes
		orders := api.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// User routes
		users := api.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
		}
	}

	// Static file serving for locally stored uploads
	if cfg.Environment == "development" {
		r.Static(cfg.Uploads.BaseURL, cfg.Uploads.LocalDir)
	}

	return r
}
