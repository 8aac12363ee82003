package router

import (
	"net/http"
	"time"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/controller"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController      *controller.AuthController
	categoryController  *controller.CategoryController
	productController   *controller.ProductController
	comboController     *controller.ComboController
	orderController     *controller.OrderController
	contactController   *controller.ContactController
	bannerController    *controller.BannerController
	settingsController  *controller.SettingsController
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	comboController *controller.ComboController,
	orderController *controller.OrderController,
	contactController *controller.ContactController,
	bannerController *controller.BannerController,
	settingsController *controller.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		categoryController:  categoryController,
		productController:   productController,
		comboController:     comboController,
		orderController:     orderController,
		contactController:   contactController,
		bannerController:    bannerController,
		settingsController:  settingsController,
		authMiddleware:      authMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	if r.rateLimitMiddleware != nil {
		router.Use(r.rateLimitMiddleware.Limit())
	}

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", r.categoryController.ListCategories)
			categories.GET("/:slug", r.categoryController.GetCategoryBySlug)
			categories.POST("", r.authMiddleware.Authenticate(), r.categoryController.CreateCategory)
			categories.PUT("/:id", r.authMiddleware.Authenticate(), r.categoryController.UpdateCategory)
			categories.DELETE("/:id", r.authMiddleware.Authenticate(), r.categoryController.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/:slug", r.productController.GetProductBySlug)
			products.POST("", r.authMiddleware.Authenticate(), r.productController.CreateProduct)
			products.PUT("/:id", r.authMiddleware.Authenticate(), r.productController.UpdateProduct)
			products.DELETE("/:id", r.authMiddleware.Authenticate(), r.productController.DeleteProduct)
			products.DELETE("/:id/images/:imageId", r.authMiddleware.Authenticate(), r.productController.DeleteProductImage)
		}

		combos := api.Group("/combos")
		{
			combos.GET("", r.comboController.ListCombos)
			combos.GET("/:id", r.comboController.GetCombo)
			combos.POST("", r.authMiddleware.Authenticate(), r.comboController.CreateCombo)
			combos.PUT("/:id", r.authMiddleware.Authenticate(), r.comboController.UpdateCombo)
			combos.DELETE("/:id", r.authMiddleware.Authenticate(), r.comboController.DeleteCombo)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("", r.authMiddleware.Authenticate(), r.orderController.ListOrders)
			orders.GET("/export", r.authMiddleware.Authenticate(), r.orderController.ExportOrders)
			orders.GET("/:id", r.authMiddleware.Authenticate(), r.orderController.GetOrder)
			orders.PUT("/:id", r.authMiddleware.Authenticate(), r.orderController.UpdateOrder)
			orders.DELETE("/:id", r.authMiddleware.Authenticate(), r.orderController.DeleteOrder)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", r.contactController.SubmitContact)
			contact.GET("", r.authMiddleware.Authenticate(), r.contactController.ListContacts)
			contact.PUT("/:id/reply", r.authMiddleware.Authenticate(), r.contactController.ReplyContact)
			contact.PUT("/:id/status", r.authMiddleware.Authenticate(), r.contactController.UpdateContactStatus)
			contact.DELETE("/:id", r.authMiddleware.Authenticate(), r.contactController.DeleteContact)
		}

		banners := api.Group("/banners")
		{
			banners.GET("", r.bannerController.ListBanners)
			banners.POST("", r.authMiddleware.Authenticate(), r.bannerController.CreateBanner)
			banners.PUT("/:id", r.authMiddleware.Authenticate(), r.bannerController.UpdateBanner)
			banners.DELETE("/:id", r.authMiddleware.Authenticate(), r.bannerController.DeleteBanner)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/public", r.settingsController.GetPublicSettings)
			settings.GET("", r.authMiddleware.Authenticate(), r.settingsController.GetSettings)
			settings.PUT("", r.authMiddleware.Authenticate(), r.settingsController.UpdateSettings)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
		})
	})

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
