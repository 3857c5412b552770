package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafflewise/draw-engine/internal/config"
	"github.com/rafflewise/draw-engine/internal/handlers"
	"github.com/rafflewise/draw-engine/internal/metrics"
	"github.com/rafflewise/draw-engine/internal/middleware"
	"github.com/rafflewise/draw-engine/pkg/jwt"
)

// Handlers bundles the HTTP handlers mounted by SetupRouter
type Handlers struct {
	Pick  *handlers.PickHandler
	Draw  *handlers.DrawHandler
	Entry *handlers.EntryHandler
	Auth  *handlers.AuthHandler
	Audit *handlers.AuditHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, h Handlers, tokens *jwt.TokenService, m *metrics.Metrics) *gin.Engine {
	// Create router
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// One-off picks need no account
		public.GET("/picks/quick", h.Pick.QuickPick)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	{
		// Draw routes
		draws := protected.Group("/draws")
		{
			draws.GET("", h.Draw.GetDraws)
			draws.GET("/next", h.Draw.GetNextDraw)
			draws.GET("/:id", h.Draw.GetDrawByID)
			draws.GET("/:id/winners", h.Draw.GetDrawWinners)
			draws.POST("/schedule", h.Draw.ScheduleDraw)
			draws.POST("/:id/execute", h.Draw.ExecuteDraw)
			draws.POST("/:id/cancel", h.Draw.CancelDraw)
		}

		// Winner routes
		protected.GET("/winners/code/:code", h.Draw.GetWinnersByCode)
		protected.PUT("/winners/:id/claim", h.Draw.UpdateClaimStatus)

		// Entry routes
		entries := protected.Group("/entries")
		{
			entries.GET("", h.Entry.GetEntries)
			entries.GET("/count", h.Entry.GetEntryCount)
			entries.GET("/code/:code", h.Entry.GetEntryByCode)
			entries.POST("", h.Entry.CreateEntry)
			entries.POST("/import", h.Entry.ImportEntries)
			entries.DELETE("/:id", h.Entry.DeleteEntry)
		}

		// Exclusion routes
		exclusions := protected.Group("/exclusions")
		{
			exclusions.GET("", h.Entry.GetExclusions)
			exclusions.POST("", h.Entry.AddExclusion)
			exclusions.DELETE("/:code", h.Entry.RemoveExclusion)
		}

		// Authenticated profile
		protected.GET("/auth/me", h.Auth.Me)

		// Audit trail
		protected.GET("/audit", h.Audit.GetAuditRecords)

		// Record counts and runtime counters
		protected.GET("/stats", h.Draw.GetStats)
		protected.GET("/metrics", func(c *gin.Context) {
			c.JSON(http.StatusOK, m.Snapshot())
		})
	}

	return router
}
