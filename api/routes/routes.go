package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/globopersona/marketing-dashboard/internal/config"
	"github.com/globopersona/marketing-dashboard/internal/handlers"
	"github.com/globopersona/marketing-dashboard/internal/middleware"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	CampaignHandler  *handlers.CampaignHandler
	ContactHandler   *handlers.ContactHandler
	SettingsHandler  *handlers.SettingsHandler
	DashboardHandler *handlers.DashboardHandler
}

// SetupRouter sets up the router. Only the actions the dashboard gates sit
// behind RequireAuth: creating/editing campaigns, adding and importing
// contacts, and toggling settings. Viewing, listing, and deleting stay
// public, matching the reference behavior.
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/forgot-password", deps.AuthHandler.ForgotPassword)
			auth.GET("/session", deps.AuthHandler.Session)
		}

		public.GET("/campaigns", deps.CampaignHandler.GetCampaigns)
		public.GET("/campaigns/:id", deps.CampaignHandler.GetCampaignByID)
		public.DELETE("/campaigns/:id", deps.CampaignHandler.DeleteCampaign)

		public.GET("/contacts", deps.ContactHandler.GetContacts)
		public.DELETE("/contacts/:id", deps.ContactHandler.DeleteContact)

		public.GET("/settings", deps.SettingsHandler.GetSettings)
		public.GET("/dashboard/stats", deps.DashboardHandler.GetStats)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.RequireAuth(cfg))
	{
		protected.GET("/auth/me", deps.AuthHandler.Me)
		protected.POST("/auth/logout", deps.AuthHandler.Logout)

		protected.POST("/campaigns", deps.CampaignHandler.CreateCampaign)
		protected.PUT("/campaigns/:id", deps.CampaignHandler.UpdateCampaign)

		protected.POST("/contacts", deps.ContactHandler.CreateContact)
		protected.POST("/contacts/import", deps.ContactHandler.ImportContacts)

		protected.PUT("/settings/:id/toggle", deps.SettingsHandler.ToggleSetting)
	}

	return router
}
