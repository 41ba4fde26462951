// File: hireflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hireflow/config"
	"hireflow/cron"
	"hireflow/database"
	candidateRepo "hireflow/database/repository/candidate"
	jobRepo "hireflow/database/repository/job"
	"hireflow/handlers"
	"hireflow/middleware"
	"hireflow/routes"
	"hireflow/services/notification"
	"hireflow/services/outreach"
	"hireflow/services/tasks"
	"hireflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQueueRedis()
	utils.StartHealthMonitor(utils.GetQueueRedisClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	candRepo := candidateRepo.NewMongoCandidateRepo()
	jobsRepo := jobRepo.NewMongoJobRepo()

	// Outreach engine state. Sessions and slot commitments live in
	// process memory; the sweeper reclaims abandoned sessions.
	slotPool := outreach.NewSlotPool()
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := outreach.NewSessionStore(sessionTTL)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	sessionStore.StartSweeper(sweepCtx, time.Minute)

	// Delivery queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	emailQueue := &tasks.AsynqEmailQueue{Client: asynqClient}

	// services.
	sessionService := &outreach.DefaultSessionService{
		Pool:   slotPool,
		Store:  sessionStore,
		Queue:  emailQueue,
		Logger: logger,
	}

	mailer := &notification.LogMailerService{Logger: logger}
	go cron.InitDeliveryWorker(mailer)

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		Outreach:   handlers.NewOutreachHandler(sessionService, candRepo, jobsRepo, logger),
		Candidates: handlers.NewCandidateHandler(candRepo, logger),
		Jobs:       handlers.NewJobHandler(jobsRepo, logger),
	}

	// Register routes with the assembled handler bundle.
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
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
