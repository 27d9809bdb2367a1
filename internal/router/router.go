package router

import (
	"fmt"
	"strings"

	"github.com/flipzokart/api/internal/cache"
	"github.com/flipzokart/api/internal/config"
	"github.com/flipzokart/api/internal/constants"
	adminhandlers "github.com/flipzokart/api/internal/http/handlers/admin"
	publichandlers "github.com/flipzokart/api/internal/http/handlers/public"
	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/logger"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the middleware stack and the API surface.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fzk"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxRequests,
	}
	resetRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:forgot", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxRequests,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	authRequired := JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/forgot-password", RateLimitMiddleware(redisClient, resetRule, KeyByIP), publicHandler.ForgotPassword)
			auth.POST("/reset-password", publicHandler.ResetPassword)

			me := auth.Group("")
			me.Use(authRequired)
			{
				me.POST("/logout", publicHandler.Logout)
				me.GET("/profile", publicHandler.Profile)
				me.PUT("/profile", publicHandler.UpdateProfile)
				me.PUT("/change-password", publicHandler.ChangePassword)
			}
		}

		// Storefront catalog.
		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:slug", publicHandler.GetProduct)
		api.GET("/categories", publicHandler.ListCategories)

		// Catalog management shares the /products prefix with the
		// storefront, split per method.
		catalog := api.Group("")
		catalog.Use(authRequired, RequireStaff(), RequirePermission(constants.PermProducts))
		{
			catalog.POST("/products/add", adminHandler.AddProduct)
			catalog.PUT("/products/:id", adminHandler.UpdateProduct)
			catalog.DELETE("/products/:id", adminHandler.DeleteProduct)
			catalog.POST("/categories", adminHandler.AddCategory)
		}

		orders := api.Group("/orders")
		orders.Use(authRequired)
		{
			orders.POST("", publicHandler.CreateOrder)
			// Staff with the orders permission see every order; customers
			// see their own.
			orders.GET("", dispatchByPermission(constants.PermOrders, adminHandler.ListOrders, publicHandler.ListOrders))
			orders.GET("/:id", dispatchByPermission(constants.PermOrders, adminHandler.GetOrder, publicHandler.GetOrder))
			orders.POST("/:id/cancel", publicHandler.CancelOrder)

			manage := orders.Group("")
			manage.Use(RequireStaff(), RequirePermission(constants.PermOrders))
			{
				manage.PUT("/:id/status", adminHandler.UpdateOrderStatus)
				manage.POST("/:id/mark-paid", adminHandler.MarkOrderPaid)
				manage.POST("/:id/refund", adminHandler.RefundOrder)
			}
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(authRequired, RequireStaff())
		{
			dashboard.GET("/stats", RequirePermission(constants.PermDashboard), adminHandler.Stats)
			dashboard.GET("/sales", RequirePermission(constants.PermDashboard), adminHandler.Sales)
			dashboard.GET("/orders", RequirePermission(constants.PermOrders), adminHandler.Orders)
			dashboard.GET("/users", RequirePermission(constants.PermUsers), adminHandler.Users)
		}

		payment := api.Group("/payment")
		payment.Use(authRequired)
		{
			payment.POST("/create-order", publicHandler.CreatePaymentOrder)
		}

		admin := api.Group("/admin")
		admin.Use(authRequired, RequireStaff())
		{
			products := admin.Group("/products")
			products.Use(RequirePermission(constants.PermProducts))
			{
				products.GET("", adminHandler.ListProducts)
				products.GET("/:id", adminHandler.GetProduct)
			}

			users := admin.Group("/users")
			users.Use(RequirePermission(constants.PermUsers))
			{
				users.GET("", adminHandler.ListUsers)
				users.POST("", adminHandler.CreateStaff)
				users.GET("/:id", adminHandler.GetUser)
				users.PUT("/:id/block", adminHandler.SetUserBlocked)
				users.PUT("/:id/role", adminHandler.SetUserRole)
				users.PUT("/:id/permissions", adminHandler.SetUserPermissions)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// dispatchByPermission routes staff holding the permission to the staff
// handler and everyone else to the fallback.
func dispatchByPermission(resource string, staff, fallback gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if value, exists := c.Get(shared.ContextKeyUser); exists {
			if user, ok := value.(*models.User); ok && user != nil &&
				user.Role != constants.RoleCustomer && user.Permissions.Allows(resource) {
				staff(c)
				return
			}
		}
		fallback(c)
	}
}
