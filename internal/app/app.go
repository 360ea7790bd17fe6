package app

import (
	"context"
	"fmt"

	"frontdoor_backend/database"
	"frontdoor_backend/internal/config"
	"frontdoor_backend/internal/email"
	"frontdoor_backend/internal/handlers"
	"frontdoor_backend/internal/ledger"
	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/routes"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/validator"
	"frontdoor_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	// Фоновая чистка протухших refresh-токенов
	cleanupWorker := workers.NewTokenCleanupWorker(gormDB, repositories.NewRefreshTokenRepository())
	cleanupWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPUsername != "" {
		provider, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailService = provider
	} else {
		logger.Warn("SMTP credentials not set, using mock email provider")
		emailService = &MockEmailProvider{}
	}

	ledgerClient, err := ledger.NewLedger(ledger.Config{
		Type:            cfg.Ledger.Type,
		Endpoint:        cfg.Ledger.Endpoint,
		TreasuryAddress: cfg.Ledger.TreasuryAddress,
	})
	if err != nil {
		logger.Fatal("Failed to initialize ledger client", "error", err)
	}
	logger.Info("Ledger client initialized", "type", cfg.Ledger.Type)

	// Репозитории без состояния: транзакция приходит параметром
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	companyRepo := repositories.NewCompanyRepository()
	referrerRepo := repositories.NewReferrerRepository()
	jobRepo := repositories.NewJobRepository()
	referralRepo := repositories.NewReferralRepository()
	claimableRepo := repositories.NewClaimableRepository()
	reputationRepo := repositories.NewReputationRepository()
	faucetRepo := repositories.NewFaucetRepository()
	eventRepo := repositories.NewEventRepository()

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, refreshTokenRepo),
		CompanyService:  services.NewCompanyService(companyRepo, jobRepo),
		ReferrerService: services.NewReferrerService(referrerRepo),
		JobService: services.NewJobService(
			jobRepo, companyRepo, eventRepo, ledgerClient, cfg.Ledger.TreasuryAddress),
		ReferralService: services.NewReferralService(
			referralRepo, referrerRepo, jobRepo, eventRepo, emailService),
		HiringService: services.NewHiringService(
			referralRepo, jobRepo, eventRepo, emailService),
		EscrowService: services.NewEscrowService(
			referralRepo, jobRepo, claimableRepo, eventRepo, ledgerClient,
			cfg.Bounty.CooldownDays, cfg.Bounty.ReferrerSharePct),
		ReputationService: services.NewReputationService(reputationRepo, referralRepo),
		FaucetService: services.NewFaucetService(
			faucetRepo, ledgerClient, cfg.Faucet.MaxAmount, cfg.Faucet.CooldownHours),
		EventService:    services.NewEventService(eventRepo),
		EmailService:    emailService,
		Ledger:          ledgerClient,
		TreasuryAddress: cfg.Ledger.TreasuryAddress,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, container.AuthService),
		CompanyHandler:  handlers.NewCompanyHandler(baseHandler, container.CompanyService),
		ReferrerHandler: handlers.NewReferrerHandler(baseHandler, container.ReferrerService),
		JobHandler:      handlers.NewJobHandler(baseHandler, container.JobService, container.ReferralService),
		ReferralHandler: handlers.NewReferralHandler(
			baseHandler, container.ReferralService, container.HiringService, container.EscrowService),
		EscrowHandler:     handlers.NewEscrowHandler(baseHandler, container.EscrowService),
		ReputationHandler: handlers.NewReputationHandler(baseHandler, container.ReputationService),
		FaucetHandler:     handlers.NewFaucetHandler(baseHandler, container.FaucetService),
		EventHandler:      handlers.NewEventHandler(baseHandler, container.EventService),
		LedgerHandler:     handlers.NewLedgerHandler(baseHandler, container.Ledger, container.TreasuryAddress),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
