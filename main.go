package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"customer-intake/pkg/api"
	"customer-intake/pkg/clients/customerapi"
	"customer-intake/pkg/clients/graphql"
	"customer-intake/pkg/config"
	"customer-intake/pkg/logging"
	"customer-intake/pkg/messages"
	"customer-intake/pkg/middleware"
	"customer-intake/pkg/services"
	"customer-intake/pkg/session"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	catalog, err := messages.NewCatalog(cfg.Language, cfg.MessagesDir)
	if err != nil {
		log.Fatalf("Error loading messages: %v", err)
	}

	// Initialize API clients
	gqlClient := graphql.NewClient(cfg.APIEndpoint, cfg.APITimeout, logger)
	customerClient := customerapi.NewClient(gqlClient, logger)

	// Initialize workflows
	submission := services.NewSubmissionWorkflow(customerClient, cfg, logger)
	edit := services.NewEditWorkflow(customerClient, logger)

	sessions := session.NewStore(cfg.SessionTTL, func() *services.RecordListWorkflow {
		return services.NewRecordListWorkflow(customerClient, logger)
	}, logger)
	go sessions.Run(context.Background(), time.Minute)

	gin.SetMode(cfg.GinMode)

	// Create a new Gin router with default middleware
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Initialize handlers and register routes
	handlers := api.NewHandlers(sessions, submission, edit, catalog, logger)
	handlers.Register(router)

	logger.Info("server starting", "port", cfg.Port, "api_endpoint", cfg.APIEndpoint)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
