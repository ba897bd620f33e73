// File: taskhive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhive/config"
	"taskhive/cron"
	"taskhive/database"
	categoryRepoPkg "taskhive/database/repository/category"
	conversationRepoPkg "taskhive/database/repository/conversation"
	notificationRepoPkg "taskhive/database/repository/notification"
	proposalRepoPkg "taskhive/database/repository/proposal"
	providerRepoPkg "taskhive/database/repository/provider"
	requestRepoPkg "taskhive/database/repository/request"
	userRepoPkg "taskhive/database/repository/user"
	"taskhive/handlers"
	"taskhive/models"
	"taskhive/routes"
	"taskhive/services/lifecycle"
	"taskhive/services/matching"
	"taskhive/services/notification"
	proposalSvc "taskhive/services/proposal"
	requestSvc "taskhive/services/request"
	"taskhive/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	categoryRepo := categoryRepoPkg.NewMongoCategoryRepo()
	requestRepo := requestRepoPkg.NewMongoRequestRepo()
	proposalRepo := proposalRepoPkg.NewMongoProposalRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	conversationRepo := conversationRepoPkg.NewMongoConversationRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	seedCategories(categoryRepo)

	// services.
	matchingService := &matching.DefaultMatchingService{
		RequestRepo:  requestRepo,
		CategoryRepo: categoryRepo,
		ProviderRepo: providerRepo,
		CacheClient:  utils.GetCacheClient(),
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:      notificationRepo,
		Users:     userRepo,
		Providers: providerRepo,
	}

	lifecycleService := &lifecycle.DefaultLifecycleService{
		RequestRepo:      requestRepo,
		ProposalRepo:     proposalRepo,
		ConversationRepo: conversationRepo,
		Notifier:         notificationService,
	}

	requestService := &requestSvc.DefaultRequestService{
		RequestRepo:   requestRepo,
		CategoryRepo:  categoryRepo,
		EnqueueFanout: cron.EnqueueRequestFanout,
	}

	proposalService := &proposalSvc.DefaultProposalService{
		RequestRepo:  requestRepo,
		ProposalRepo: proposalRepo,
		Notifier:     notificationService,
	}

	// Background worker: fan-out and reconciliation.
	cron.InitWorker(matchingService, requestRepo, notificationService, lifecycleService)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Requests: &handlers.RequestHandler{
			Service:   requestService,
			Lifecycle: lifecycleService,
		},
		Proposals: &handlers.ProposalHandler{
			Service:   proposalService,
			Lifecycle: lifecycleService,
		},
		Feed: &handlers.FeedHandler{
			Matching:     matchingService,
			ProviderRepo: providerRepo,
		},
		Notifications: &handlers.NotificationHandler{Service: notificationService},
		Conversations: &handlers.ConversationHandler{Repo: conversationRepo},
		Categories:    &handlers.CategoryHandler{Repo: categoryRepo},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, matching.NewIPLocationResolver())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func radiusKm(v float64) *float64 { return &v }

// seedCategories bootstraps the category reference data. Seeding upserts by
// name, so restarts never duplicate or overwrite admin edits.
func seedCategories(repo categoryRepoPkg.CategoryRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := repo.Seed(ctx, []models.Category{
		{Name: "Home Repair", MatchRadiusKm: radiusKm(10), Description: "Plumbing, electrical and general repairs"},
		{Name: "Cleaning", MatchRadiusKm: radiusKm(10), Description: "Home and office cleaning"},
		{Name: "Moving", MatchRadiusKm: radiusKm(50), Description: "City-wide moving and delivery"},
		{Name: "Event Services", MatchRadiusKm: radiusKm(50), Description: "Catering, photography and event setup"},
		{Name: "Tutoring", MatchRadiusKm: nil, Description: "Online and remote tutoring"},
		{Name: "Design", MatchRadiusKm: nil, Description: "Remote graphic and web design"},
	})
	if err != nil {
		utils.GetLogger().Sugar().Warnf("main: failed to seed categories: %v", err)
	}
}
