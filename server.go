package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiftsync/config"
	"shiftsync/database"
	userRepoPkg "shiftsync/database/repository/user"
	"shiftsync/handlers"
	"shiftsync/middleware"
	"shiftsync/routes"
	"shiftsync/services/backend"
	"shiftsync/services/schedule"
	"shiftsync/services/synchronizer"
	"shiftsync/services/undo"
	"shiftsync/services/user"
	"shiftsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

func runServer() error {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// stores.
	var (
		redisClient *redis.Client
		mongoClient *mongo.Client
		sessions    utils.SessionStore
		ledger      undo.Ledger
		names       userRepoPkg.UserRepository
	)
	if cfg.StoreBackend == "memory" {
		logger.Warn("main: using in-memory stores, state is lost on restart")
		sessions = utils.NewMemorySessionStore()
		ledger = undo.NewMemoryLedger()
		names = userRepoPkg.NewMemoryUserRepo()
	} else {
		redisClient = utils.GetSessionClient()
		database.InitDB(logger)
		mongoClient = database.MongoClient
		sessions = utils.NewRedisSessionStore(redisClient, cfg.SessionTTL)
		ledger = undo.NewRedisLedger(redisClient, cfg.SessionTTL)
		names = userRepoPkg.NewMongoUserRepo(database.Database())
	}

	var locker synchronizer.Locker = synchronizer.NewMemoryLocker()
	if cfg.LockBackend == "redis" {
		if redisClient == nil {
			redisClient = utils.GetSessionClient()
		}
		locker = synchronizer.NewRedisLocker(redisClient, 30*time.Second, logger)
	}

	// services.
	oauthConfig := user.NewOAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	factory := &backend.GoogleFactory{
		OAuth:         oauthConfig,
		SpreadsheetID: cfg.SpreadsheetID,
		CalendarID:    cfg.CalendarID,
	}
	if cfg.SpreadsheetSource == "xlsx" {
		factory.XLSXPath = cfg.XLSXPath
	}

	parser := schedule.NewGridParser(nil)
	resolver, err := schedule.NewTimeResolver(cfg.TimeZone, parser.Rows())
	if err != nil {
		logger.Sugar().Fatalf("main: invalid TIME_ZONE %q: %v", cfg.TimeZone, err)
	}
	scheduleService := schedule.NewService(parser, cfg.FallbackWeekTabs, logger)
	syncService := &synchronizer.DefaultSynchronizer{
		Resolver:           resolver,
		Ledger:             ledger,
		Locker:             locker,
		Concurrency:        cfg.SyncConcurrency,
		DefaultAllDayColor: cfg.DefaultAllDayColor,
		Logger:             logger,
	}
	undoService := undo.NewService(ledger, logger)
	userService := &user.DefaultUserService{
		Repo:    names,
		Fetcher: &user.GoogleEmailFetcher{OAuth: oauthConfig},
	}

	authHandler := handlers.NewAuthHandler(oauthConfig, sessions, userService, cfg.PostLoginRedirect)
	userHandler := handlers.NewUserHandler(userService)
	calendarHandler := handlers.NewCalendarHandler(factory, resolver.Location())
	scheduleHandler := handlers.NewScheduleHandler(factory, scheduleService)
	shiftHandler := handlers.NewShiftHandler(factory, scheduleService, syncService, undoService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,
		Signer:   utils.NewSessionSigner(cfg.SessionSecret),
		SessionOptions: middleware.SessionOptions{
			TTL:    cfg.SessionTTL,
			Secure: config.IsProduction(),
		},
		AllowedOrigins: cfg.CORSOrigins,

		AuthRedirectHandler:  authHandler.AuthRedirectHandler,
		OAuthCallbackHandler: authHandler.OAuthCallbackHandler,

		UserInfoHandler: userHandler.UserInfoHandler,
		SaveNameHandler: userHandler.SaveNameHandler,

		ListEventsHandler:  calendarHandler.ListEventsHandler,
		DeleteEventHandler: calendarHandler.DeleteEventHandler,

		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		AddShiftsHandler:      shiftHandler.AddShiftsHandler,
		UndoLastEventsHandler: shiftHandler.UndoLastEventsHandler,
		ExportShiftsHandler:   shiftHandler.ExportShiftsHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	if redisClient != nil || mongoClient != nil {
		utils.StartHealthMonitor(monitorCtx, redisClient, mongoClient)
	}

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "3000"
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
		return err
	}
	database.Disconnect(ctx, mongoClient, logger)

	logger.Sugar().Info("main: server stopped gracefully")
	return nil
}
