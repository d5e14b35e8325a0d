package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/access"
	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
	"github.com/polkiloo/vegdelivery/internal/server/http/handlers"
	"github.com/polkiloo/vegdelivery/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BackofficeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(middleware.DefaultMaxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	packagingHandler := handlers.NewPackagingHandler(facade)
	deliveryHandler := handlers.NewDeliveryHandler(facade)
	managerHandler := handlers.NewManagerHandler(facade)

	engine.GET("/healthz", handlers.Health)

	api := engine.Group("/api")
	api.GET("/navigate", middleware.OptionalAuth(facade), sessionHandler.Navigate)

	session := api.Group("/session")
	session.POST("/login", sessionHandler.Login)
	session.POST("/logout", middleware.AuthRequired(facade), sessionHandler.Logout)
	session.GET("", middleware.AuthRequired(facade), sessionHandler.Current)

	dashboard := middleware.RequireView(access.RouteAdminDashboard)
	adminOrder := middleware.RequireView(access.RouteAdminOrder)
	admin := api.Group("/admin", middleware.AuthRequired(facade))
	admin.GET("/dashboard", dashboard, adminHandler.Dashboard)
	admin.GET("/orders", dashboard, adminHandler.Orders)
	admin.GET("/orders/:orderId", adminOrder, adminHandler.Order)
	admin.PATCH("/orders/:orderId", adminOrder, adminHandler.UpdateDetails)
	admin.POST("/orders/:orderId/status", dashboard, adminHandler.Triage)
	admin.PATCH("/orders/:orderId/items/:itemId", adminOrder, adminHandler.UpdateItem)
	admin.POST("/orders/:orderId/save", adminOrder, adminHandler.Save)
	admin.GET("/users", dashboard, adminHandler.Users)
	admin.PUT("/users/:userId/role", dashboard, adminHandler.ChangeRole)

	packOrders := middleware.RequireView(access.RoutePackOrders)
	packOrder := middleware.RequireView(access.RoutePackOrder)
	packaging := api.Group("/packaging", middleware.AuthRequired(facade))
	packaging.GET("/orders", packOrders, packagingHandler.Queue)
	packaging.GET("/orders/:orderId", packOrder, packagingHandler.Order)
	packaging.PUT("/orders/:orderId/items/:itemId/availability", packOrder, packagingHandler.SetAvailability)
	packaging.DELETE("/orders/:orderId/items/:itemId", packOrder, packagingHandler.RemoveItem)
	packaging.POST("/orders/:orderId/packed", packOrder, packagingHandler.MarkPacked)
	packaging.POST("/orders/:orderId/cancel", packOrder, packagingHandler.Cancel)

	deliveryOrders := middleware.RequireView(access.RouteDeliveryOrders)
	deliveryOrder := middleware.RequireView(access.RouteDeliveryOrder)
	delivery := api.Group("/delivery", middleware.AuthRequired(facade))
	delivery.GET("/orders", deliveryOrders, deliveryHandler.Queue)
	delivery.GET("/assignments", deliveryOrders, deliveryHandler.Assignments)
	delivery.GET("/orders/:orderId", deliveryOrder, deliveryHandler.Order)
	delivery.POST("/orders/:orderId/delivered", deliveryOrder, deliveryHandler.MarkDelivered)
	delivery.POST("/orders/:orderId/cancel", deliveryOrder, deliveryHandler.Cancel)

	manager := api.Group("/manager", middleware.AuthRequired(facade), middleware.RequireView(access.RouteManager))
	manager.GET("/dashboard", managerHandler.Dashboard)
	manager.GET("/orders", managerHandler.Candidates)
	manager.GET("/delivery-staff", managerHandler.DeliveryStaff)
	manager.POST("/orders/:orderId/assign", managerHandler.Assign)
	manager.GET("/requirements", managerHandler.Requirements)
	manager.GET("/vegetables", managerHandler.Vegetables)
	manager.PUT("/vegetables/:vegetableId/procurement", managerHandler.SetProcurement)
	manager.PUT("/vegetables/:vegetableId/price", managerHandler.SetPrice)
	manager.PUT("/vegetables/:vegetableId/price-band", managerHandler.StagePriceBand)
	manager.DELETE("/vegetables/:vegetableId/price-band", managerHandler.DiscardPriceBand)
	manager.POST("/vegetables/:vegetableId/price-band/commit", managerHandler.CommitPriceBand)
	manager.GET("/price-bands", managerHandler.PriceBands)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	})

	return engine
}
