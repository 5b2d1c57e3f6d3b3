package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrify/config"
	"nutrify/cron"
	"nutrify/database"
	questionnaireRepo "nutrify/database/repository/questionnaire"
	reservationRepo "nutrify/database/repository/reservation"
	slotRepo "nutrify/database/repository/slot"
	"nutrify/handlers"
	"nutrify/middleware"
	"nutrify/routes"
	"nutrify/services/booking"
	"nutrify/services/export"
	"nutrify/services/notification"
	"nutrify/services/payment"
	"nutrify/services/questionnaire"
	"nutrify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDraftCache()
	stripe.Key = config.AppConfig.StripeKey

	// Outbound integrations. Each degrades to a logged no-op when its
	// credential is absent.
	mailer := utils.NewMailer(logger)
	discord := utils.NewDiscordWebhook(logger)

	notificationService := notification.NewDefaultNotificationService(
		mailer, discord, config.AppConfig.InternalEmail, logger)

	alertOps := func(message string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notificationService.AlertOps(ctx, message)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(alertOps))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	qRepo := questionnaireRepo.NewMongoQuestionnaireRepo()
	sRepo := slotRepo.NewMongoSlotRepo()
	rRepo := reservationRepo.NewMongoReservationRepo()

	// services.
	questionnaireService := &questionnaire.DefaultQuestionnaireService{
		Repo:     qRepo,
		Drafts:   questionnaire.NewDraftStore(utils.GetDraftCacheClient()),
		Notifier: notificationService,
		Logger:   logger,
	}

	reminderClient := cron.NewReminderQueueClient()
	bookingService := &booking.DefaultBookingService{
		Slots:        sRepo,
		Reservations: rRepo,
		Reminders:    reminderClient,
		Logger:       logger,
	}

	exportService := &export.DefaultExportService{
		Records:  qRepo,
		Notifier: notificationService,
		Logger:   logger,
	}
	if config.AppConfig.GoogleCredentialsFile != "" {
		exporter, err := export.NewGoogleDocsExporter(context.Background(),
			config.AppConfig.GoogleCredentialsFile, config.AppConfig.GoogleDriveFolderID)
		if err != nil {
			logger.Sugar().Errorf("main: docs exporter unavailable: %v", err)
		} else {
			exportService.Docs = exporter
		}
	}
	if crm := export.NewHubSpotClient(config.AppConfig.HubSpotAPIKey); crm != nil {
		exportService.CRM = crm
	}

	paymentService := &payment.DefaultPaymentService{
		MerchantID: config.AppConfig.PaymentMerchantID,
		Secret:     config.AppConfig.PaymentSecret,
		GatewayURL: config.AppConfig.PaymentGatewayURL,
		BaseURL:    config.AppConfig.BaseURL,
		StripeKey:  config.AppConfig.StripeKey,
		Production: config.IsProduction(),
		Logger:     logger,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetDraftCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Questionnaire: handlers.NewQuestionnaireHandler(questionnaireService, logger),
		Booking:       handlers.NewBookingHandler(bookingService, logger),
		Admin:         handlers.NewAdminHandler(bookingService, logger),
		Webhook:       handlers.NewWebhookHandler(exportService, logger),
		Payment:       handlers.NewPaymentHandler(paymentService, logger),
		AdminFailure: func(ip, path string) {
			alertOps("unauthorized admin access attempt from " + ip + " on " + path)
		},
	}

	routes.RegisterRoutes(router, handlerBundle)

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
