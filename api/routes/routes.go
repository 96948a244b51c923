package routes

import (
	"net/http"

	"github.com/brightops/campaign-backend/internal/config"
	"github.com/brightops/campaign-backend/internal/handlers"
	"github.com/brightops/campaign-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies groups the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	CampaignHandler *handlers.CampaignHandler
	TemplateHandler *handlers.TemplateHandler
	SenderHandler   *handlers.SenderHandler
	ContactHandler  *handlers.ContactHandler
	TrackingHandler *handlers.TrackingHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.Default()

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
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Tracking routes. These are hit from recipients' mail clients, so they
		// stay unauthenticated.
		track := public.Group("/track")
		{
			track.GET("/open/:campaignId/:contactId", deps.TrackingHandler.Open)
			track.GET("/click/:campaignId/:contactId", deps.TrackingHandler.Click)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Campaign routes
		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.GetAllCampaigns)
			campaigns.GET("/count", deps.CampaignHandler.GetCampaignCount)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.GET("/:id/logs", deps.CampaignHandler.GetDeliveryLogs)
			campaigns.GET("/:id/messages", deps.CampaignHandler.GetMessages)
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.POST("/:id/start", deps.CampaignHandler.StartCampaign)
			campaigns.PUT("/:id", deps.CampaignHandler.UpdateCampaign)
			campaigns.PUT("/:id/status", deps.CampaignHandler.UpdateStatus)
			campaigns.DELETE("/:id", deps.CampaignHandler.DeleteCampaign)
		}

		// Template routes
		templates := protected.Group("/templates")
		{
			templates.GET("", deps.TemplateHandler.GetAllTemplates)
			templates.GET("/:id", deps.TemplateHandler.GetTemplateByID)
			templates.POST("", deps.TemplateHandler.CreateTemplate)
			templates.PUT("/:id", deps.TemplateHandler.UpdateTemplate)
			templates.DELETE("/:id", deps.TemplateHandler.DeleteTemplate)
		}

		// Sender identity routes
		senders := protected.Group("/senders")
		{
			senders.GET("", deps.SenderHandler.GetAllSenders)
			senders.GET("/:id", deps.SenderHandler.GetSenderByID)
			senders.POST("", deps.SenderHandler.CreateSender)
			senders.PUT("/:id", deps.SenderHandler.UpdateSender)
			senders.DELETE("/:id", deps.SenderHandler.DeleteSender)
		}

		// Contact routes
		contacts := protected.Group("/contacts")
		{
			contacts.GET("", deps.ContactHandler.GetAllContacts)
			contacts.GET("/:id", deps.ContactHandler.GetContactByID)
			contacts.POST("", deps.ContactHandler.CreateContact)
			contacts.PUT("/:id", deps.ContactHandler.UpdateContact)
			contacts.DELETE("/:id", deps.ContactHandler.DeleteContact)
		}
	}

	return router
}
