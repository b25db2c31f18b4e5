package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nifinova/internal/config"
	delivery "nifinova/internal/delivery/http"
	_ "nifinova/internal/docs"
	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/internal/service"
	"nifinova/pkg/logger"
	"nifinova/pkg/telegram"
	"nifinova/pkg/whatsapp"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the trading dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Trading Dashboard Service", logger.Field("name", cfg.App.Name))

	// Initialize repositories. All state is in memory; a restart clears it.
	accountRepo := repository.NewAccountRepository(entity.Account{
		Username: "pkrsolution",
		Password: "prabhanjan2025",
	})
	sessionRepo := repository.NewSessionRepository()
	subscriberRepo := repository.NewSubscriberRepository()
	signalRepo := repository.NewSignalRepository()
	positionRepo := repository.NewPositionRepository()
	marketRepo := repository.NewMarketRepository()
	kiteRepo := repository.NewKiteRepository(cfg, appLogger)
	nseRepo := repository.NewNSERepository(cfg, appLogger)
	yahooRepo := repository.NewYahooRepository()

	// Initialize AI sentiment client when a key is configured; without one
	// the sentiment service runs on its heuristic.
	var genAIClient *genai.Client
	if cfg.Gemini.APIKey != "" {
		genAIClient, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
	} else {
		appLogger.Warn("No Gemini API key configured, using heuristic sentiment analysis")
	}

	// Initialize notifiers
	whatsappNotifier := whatsapp.NewClient(whatsapp.Config{
		AccessToken:   cfg.WhatsApp.AccessToken,
		PhoneNumberID: cfg.WhatsApp.PhoneNumberID,
		BaseURL:       cfg.WhatsApp.BaseURL,
	}, appLogger)

	var telegramNotifier telegram.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		telegramNotifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram client", logger.ErrorField(err))
		}
	}

	// Initialize services
	statusSvc := service.NewMarketStatusService()
	marketDataSvc := service.NewMarketDataService(kiteRepo, nseRepo, yahooRepo, marketRepo, statusSvc, appLogger)
	sentimentSvc := service.NewSentimentService(cfg, appLogger, genAIClient)
	notificationSvc := service.NewNotificationService(subscriberRepo, signalRepo, whatsappNotifier, telegramNotifier, appLogger)
	authSvc := service.NewAuthService(accountRepo, sessionRepo, appLogger)
	subscriberSvc := service.NewSubscriberService(subscriberRepo, appLogger)
	signalSvc := service.NewSignalService(signalRepo)
	portfolioSvc := service.NewPortfolioService(positionRepo)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	streamHandler := delivery.NewStreamHandler(appLogger)
	streamHandler.RegisterRoutes(e)

	generator := service.NewSignalGenerator(cfg, marketDataSvc, sentimentSvc, notificationSvc, signalRepo, marketRepo, streamHandler, appLogger)
	go generator.Start(ctx)

	// Initialize handlers and routes
	sessionMiddleware := delivery.SessionMiddleware(authSvc)
	api := e.Group("/api")

	authHandler := delivery.NewAuthHandler(authSvc, appLogger)
	authHandler.RegisterRoutes(api.Group("/auth"), sessionMiddleware)

	protected := api.Group("", sessionMiddleware)

	marketHandler := delivery.NewMarketHandler(marketDataSvc, statusSvc, sentimentSvc, portfolioSvc, marketRepo, signalRepo, subscriberRepo, appLogger)
	marketHandler.RegisterRoutes(protected.Group("/market"))

	signalHandler := delivery.NewSignalHandler(signalSvc, appLogger)
	signalHandler.RegisterRoutes(protected.Group("/signals"))

	subscriberHandler := delivery.NewSubscriberHandler(subscriberSvc, appLogger)
	subscriberHandler.RegisterRoutes(protected.Group("/whatsapp/users"))

	portfolioHandler := delivery.NewPortfolioHandler(portfolioSvc, appLogger)
	portfolioHandler.RegisterRoutes(protected.Group("/portfolio"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title NIFINOVA Trading Dashboard API
// @version 1.0
// @description AI powered NIFTY options trading dashboard.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "server"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing server CLI: %s\n", err)
		os.Exit(1)
	}
}
