package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/config"
	domainRepo "github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/internal/infrastructure/database"
	"github.com/serviflow/serviflow-api/internal/infrastructure/repository"
	"github.com/serviflow/serviflow-api/internal/presentation/http/handler"
	"github.com/serviflow/serviflow-api/internal/presentation/http/routes"
	"github.com/serviflow/serviflow-api/pkg/email"
	"github.com/serviflow/serviflow-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed roles, permissions and master data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)
	clientRepo := repository.NewClientRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationItemRepo := repository.NewQuotationLineItemRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	collectionItemRepo := repository.NewCollectionLineItemRepository(db)
	cuentaRepo := repository.NewCuentaCobroRepository(db)
	cuentaItemRepo := repository.NewCuentaCobroLineItemRepository(db)
	contractRepo := repository.NewContractRepository(db)
	contractClauseRepo := repository.NewContractClauseRepository(db)
	clauseTemplateRepo := repository.NewClauseTemplateRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	masterDataRepo := repository.NewMasterDataRepository(db)
	profileRepo := repository.NewCompanyProfileRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager)
	userService := service.NewUserService(userRepo, roleRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo)
	clientService := service.NewClientService(clientRepo)
	providerService := service.NewProviderService(providerRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	draftService := service.NewDraftService(quotationRepo, quotationItemRepo, clientRepo, catalogRepo, profileRepo, emailService)
	quotationService := service.NewQuotationService(quotationRepo, quotationItemRepo, profileRepo, emailService)
	collectionService := service.NewCollectionService(collectionRepo, collectionItemRepo, quotationRepo, clientRepo)
	cuentaService := service.NewCuentaCobroService(cuentaRepo, cuentaItemRepo, clientRepo)
	contractService := service.NewContractService(contractRepo, contractClauseRepo, clauseTemplateRepo, clientRepo, profileRepo)
	taskService := service.NewTaskService(taskRepo, userRepo, preferencesRepo, emailService)
	masterDataService := service.NewMasterDataService(masterDataRepo)
	profileService := service.NewProfileService(profileRepo)
	dashboardService := service.NewDashboardService(quotationRepo, collectionRepo, clientRepo, taskRepo)

	// Background jobs: expire overdue quotations, send task reminders and
	// trim replayed idempotency keys
	go runPeriodicJobs(quotationService, taskService, idempotencyRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, userService),
		Client:      handler.NewClientHandler(clientService),
		Provider:    handler.NewProviderHandler(providerService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Draft:       handler.NewDraftHandler(draftService),
		Quotation:   handler.NewQuotationHandler(quotationService),
		Collection:  handler.NewCollectionHandler(collectionService),
		CuentaCobro: handler.NewCuentaCobroHandler(cuentaService),
		Contract:    handler.NewContractHandler(contractService),
		Task:        handler.NewTaskHandler(taskService),
		MasterData:  handler.NewMasterDataHandler(masterDataService),
		Profile:     handler.NewProfileHandler(profileService),
		Preferences: handler.NewPreferencesHandler(preferencesService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func runPeriodicJobs(quotations *service.QuotationService, tasks *service.TaskService, idempotencyRepo domainRepo.IdempotencyRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)

		if n, err := quotations.ExpireOverdue(ctx); err != nil {
			log.Printf("Expire overdue quotations: %v", err)
		} else if n > 0 {
			log.Printf("Expired %d overdue quotations", n)
		}

		if n, err := tasks.SendDueReminders(ctx, time.Hour); err != nil {
			log.Printf("Send task reminders: %v", err)
		} else if n > 0 {
			log.Printf("Sent %d task reminders", n)
		}

		if err := idempotencyRepo.DeleteExpired(ctx); err != nil {
			log.Printf("Purge idempotency keys: %v", err)
		}

		cancel()
	}
}
