package routes

import (
	"net/http"
	"time"

	"taskhive/handlers"
	"taskhive/middleware"
	"taskhive/services/matching"
	"taskhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRequestRoutes registers buyer-side request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		// Public browse endpoints.
		api.GET("", hb.Requests.BrowseRequestsHandler)
		api.GET("/id/:id", hb.Requests.GetRequestHandler)

		// Buyer endpoints (require a user token).
		buyer := api.Group("")
		buyer.Use(middleware.JWTAuthMiddleware("user"))
		buyer.POST("", hb.Requests.CreateRequestHandler)
		buyer.GET("/mine", hb.Requests.ListMyRequestsHandler)
		buyer.PUT("/id/:id", hb.Requests.UpdateRequestHandler)
		buyer.GET("/id/:id/proposals", hb.Proposals.ListProposalsForRequestHandler)
		buyer.POST("/id/:id/accept/:proposalID", hb.Requests.AcceptProposalHandler)
		buyer.POST("/id/:id/cancel", hb.Requests.CancelRequestHandler)
		buyer.POST("/id/:id/complete", hb.Requests.CompleteRequestHandler)
	}
}

// RegisterProposalRoutes registers provider bid endpoints.
func RegisterProposalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/proposals")
	{
		provider := api.Group("")
		provider.Use(middleware.JWTAuthMiddleware("provider"))
		provider.POST("", hb.Proposals.SubmitProposalHandler)
		provider.GET("/mine", hb.Proposals.ListMyProposalsHandler)
		provider.POST("/id/:id/withdraw", hb.Proposals.WithdrawProposalHandler)

		buyer := api.Group("")
		buyer.Use(middleware.JWTAuthMiddleware("user"))
		buyer.POST("/id/:id/reject", hb.Proposals.RejectProposalHandler)
	}
}

// RegisterFeedRoutes registers the provider opportunity feed.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle, resolver matching.LocationResolver) {
	api := r.Group("/api/feed")
	{
		api.Use(middleware.JWTAuthMiddleware("provider"))
		api.Use(middleware.GeolocationMiddleware(resolver))
		api.GET("/opportunities", hb.Feed.OpportunityFeedHandler)
	}
}

// RegisterNotificationRoutes registers the notification inbox.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		// Any authenticated role; the inbox is keyed by subject.
		api.Use(middleware.JWTAuthMiddleware(""))
		api.GET("", hb.Notifications.ListNotificationsHandler)
		api.POST("/id/:id/read", hb.Notifications.MarkNotificationReadHandler)
	}
}

// RegisterConversationRoutes registers the conversation list.
func RegisterConversationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversations")
	{
		api.Use(middleware.JWTAuthMiddleware(""))
		api.GET("", hb.Conversations.ListConversationsHandler)
	}
}

// RegisterCategoryRoutes registers the category reference data.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.Categories.ListCategoriesHandler)
}

// RegisterAuthRoutes registers the development token endpoint.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/api/auth/dev-token", handlers.DevTokenHandler)
}

// RegisterHealthRoute registers health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TaskHive"})
	})
	r.GET("/health/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, resolver matching.LocationResolver) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterRequestRoutes(r, hb)
	RegisterProposalRoutes(r, hb)
	RegisterFeedRoutes(r, hb, resolver)
	RegisterNotificationRoutes(r, hb)
	RegisterConversationRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterAuthRoutes(r)
	RegisterHealthRoute(r)
}
