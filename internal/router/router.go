package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vitrineweb/vitrine-backend/config"
	"github.com/vitrineweb/vitrine-backend/internal/app/controller"
	"github.com/vitrineweb/vitrine-backend/internal/middleware"
)

type Router struct {
	storeController   *controller.StoreController
	catalogController *controller.CatalogController
	cartController    *controller.CartController
	config            *config.Config
}

func NewRouter(
	storeController *controller.StoreController,
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	cfg *config.Config,
) *Router {
	return &Router{
		storeController:   storeController,
		catalogController: catalogController,
		cartController:    cartController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Vitrine API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		store := v1.Group("/store")
		{
			store.GET("", r.storeController.GetStoreData)
			store.GET("/status", r.storeController.GetStatus)
			store.GET("/hours", r.storeController.GetSchedule)
		}

		v1.GET("/menu", r.storeController.GetMenu)

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/categories", r.catalogController.GetCategories)
			catalog.GET("/categories/:id/items", r.catalogController.GetCategoryItems)
		}

		cart := v1.Group("/cart")
		cart.Use(middleware.CartSession())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddItem)
			cart.PUT("/:id", r.cartController.UpdateItem)
			cart.DELETE("/:id", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
		}
	}

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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
