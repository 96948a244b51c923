package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brightops/campaign-backend/api/routes"
	"github.com/brightops/campaign-backend/internal/cache"
	"github.com/brightops/campaign-backend/internal/config"
	"github.com/brightops/campaign-backend/internal/handlers"
	"github.com/brightops/campaign-backend/internal/repositories"
	mongorepo "github.com/brightops/campaign-backend/internal/repositories/mongodb"
	"github.com/brightops/campaign-backend/internal/scheduler"
	"github.com/brightops/campaign-backend/internal/services"
	"github.com/brightops/campaign-backend/pkg/geoip"
	"github.com/brightops/campaign-backend/pkg/mailer"
	"github.com/brightops/campaign-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to MongoDB using the pkg helper
	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories, assigning to interface types
	var campaignRepo repositories.CampaignRepository = mongorepo.NewCampaignRepository(db)
	var templateRepo repositories.TemplateRepository = mongorepo.NewTemplateRepository(db)
	var contactRepo repositories.ContactRepository = mongorepo.NewContactRepository(db)
	var senderRepo repositories.SenderIdentityRepository = mongorepo.NewSenderIdentityRepository(db)
	var messageRepo repositories.MessageRepository = mongorepo.NewMessageRepository(db)
	var logRepo repositories.DeliveryLogRepository = mongorepo.NewDeliveryLogRepository(db)
	var auditRepo repositories.AuditEventRepository = mongorepo.NewAuditEventRepository(db)
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)

	// Optional Redis cache in front of the geo lookup
	var geoCache cache.Cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		geoCache = cache.NewRedisCache(rdb, time.Duration(cfg.Redis.TTLHours)*time.Hour)
	}
	geoClient := geoip.NewClient(cfg.GeoIP.BaseURL, geoCache)

	// Delivery transport: real SMTP by default, mock when configured
	var transport mailer.Transport = mailer.NewSMTPTransport(
		time.Duration(cfg.SMTP.TimeoutSecs)*time.Second,
		cfg.SMTP.SkipTLSVerify,
	)
	if cfg.SMTP.MockTransport {
		log.Println("Using mock delivery transport")
		transport = mailer.NewMockTransport()
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	campaignService := services.NewCampaignService(
		campaignRepo, templateRepo, contactRepo, senderRepo,
		messageRepo, logRepo, auditRepo,
		transport, cfg.Tracking.BaseURL,
	)
	templateService := services.NewTemplateService(templateRepo)
	senderService := services.NewSenderService(senderRepo)
	contactService := services.NewContactService(contactRepo)
	trackingService := services.NewTrackingService(campaignRepo, contactRepo, logRepo, geoClient)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		CampaignHandler: handlers.NewCampaignHandler(campaignService),
		TemplateHandler: handlers.NewTemplateHandler(templateService),
		SenderHandler:   handlers.NewSenderHandler(senderService),
		ContactHandler:  handlers.NewContactHandler(contactService),
		TrackingHandler: handlers.NewTrackingHandler(trackingService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	// Start the ticker that launches due scheduled campaigns
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(
			time.Duration(cfg.Scheduler.IntervalSecs)*time.Second,
			campaignService.StartDueCampaigns,
		)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
