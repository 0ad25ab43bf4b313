package http

import (
	"github.com/gin-gonic/gin"

	"aula/internal/infrastructure/ratelimit"
	"aula/internal/interfaces/http/middleware"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(c *Container) *gin.Engine {
	if c.cfg.Server.Mode != "" {
		gin.SetMode(c.cfg.Server.Mode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logging(c.logger.Named("http")),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
	)

	engine.GET("/health", c.healthHandler.Check)

	api := engine.Group("/api")
	{
		auth := api.Group("/auth", c.rateLimit.Limit("auth", ratelimit.Config{PerMinute: 10, PerHour: 100}))
		{
			auth.POST("/register", c.authHandler.Register)
			auth.POST("/login", c.authHandler.Login)
			auth.POST("/refresh", c.authHandler.Refresh)
		}

		// Route evaluation works for anonymous visitors too; the guard
		// falls back to the guest role when no token is present.
		api.GET("/access/evaluate", c.authMiddleware.OptionalAuth(), c.accessHandler.Evaluate)

		// Billing provider deliveries authenticate by signature, not JWT.
		api.POST("/billing/webhook", c.webhookHandler.Handle)

		authed := api.Group("", c.authMiddleware.RequireAuth())
		{
			authed.GET("/notifications", c.notificationHandler.List)
			authed.POST("/notifications/:id/read", c.notificationHandler.MarkRead)
			authed.GET("/notifications/unread-count", c.notificationHandler.UnreadCount)
		}

		admin := api.Group("/admin", c.authMiddleware.RequireAuth())
		{
			admin.GET("/users", c.permissionMiddleware.RequirePermission("users", "read"), c.adminHandler.ListUsers)
			admin.GET("/users/:id", c.permissionMiddleware.RequirePermission("users", "read"), c.adminHandler.GetUser)
			admin.PUT("/users/:id/role", c.permissionMiddleware.RequirePermission("users", "write"), c.adminHandler.SetUserRole)
			admin.POST("/notifications/:id/resend", c.permissionMiddleware.RequirePermission("notifications", "write"), c.adminHandler.ResendNotification)
		}
	}

	// Page routes are served behind the access guard so a visitor landing
	// on a section they cannot use is redirected instead of shown an error.
	pages := engine.Group("", c.authMiddleware.OptionalAuth(), c.accessGuard.GuardRoute())
	{
		for _, prefix := range []string{"/admin", "/academia", "/alumno", "/temario", "/tests", "/flashcards"} {
			p := prefix
			pages.GET(p, func(ctx *gin.Context) {
				ctx.JSON(200, gin.H{"section": p})
			})
			pages.GET(p+"/*rest", func(ctx *gin.Context) {
				ctx.JSON(200, gin.H{"section": p})
			})
		}
	}

	return engine
}
