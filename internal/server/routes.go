package server

import (
	"github.com/labstack/echo/v4"

	"example.com/finance-advisor/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	advisorHandler *handlers.AdvisorHandler,
	sessionHandler *handlers.SessionHandler,
	statsHandler *handlers.StatsHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	advisorRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", healthHandler.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	advisorGroup := api.Group("/advisor", authMiddleware, advisorRateLimiter)
	advisorGroup.POST("/analyze", advisorHandler.Analyze)
	advisorGroup.POST("/preview", advisorHandler.Preview)

	sessions := api.Group("/sessions", authMiddleware)
	sessions.GET("", sessionHandler.List)
	sessions.GET("/stats", statsHandler.Overview)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.GET("/:id/export/json", sessionHandler.ExportJSON)
	sessions.GET("/:id/export/csv", sessionHandler.ExportCSV)
	sessions.GET("/:id/export/html", sessionHandler.ExportHTML)
	sessions.DELETE("/:id", sessionHandler.Delete)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/usage-reports", adminHandler.ListUsageReports)
	admin.GET("/usage", adminHandler.Usage)
}
