package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-registry-service/internal/app/config"
	"patient-registry-service/internal/app/delivery/http/controllers"
	"patient-registry-service/internal/app/delivery/http/middlewares"
	"patient-registry-service/internal/app/delivery/http/routers"
	"patient-registry-service/internal/app/drivers/database"
	"patient-registry-service/internal/app/drivers/logger"
	"patient-registry-service/internal/app/drivers/messaging"
	"patient-registry-service/internal/app/drivers/storage"
	"patient-registry-service/internal/app/services/bundles"
	"patient-registry-service/internal/app/services/engine"
	"patient-registry-service/internal/app/services/patients"
	"patient-registry-service/internal/app/services/shared/cache"
	"patient-registry-service/internal/app/services/shared/events"
	sharedredis "patient-registry-service/internal/app/services/shared/redis"
	sharedstorage "patient-registry-service/internal/app/services/shared/storage"
	"patient-registry-service/internal/app/services/validation"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Document engine with read-through cache
	documentEngine := engine.NewMongoDocumentEngine(bootstrap.MongoDB)
	cachedEngine := cache.NewCachedDocumentEngine(
		documentEngine,
		redisRepository,
		time.Second*time.Duration(bootstrap.InternalConfig.FHIR.DocumentCacheTTLInSecond),
		bootstrap.ZapLogger,
	)

	// Events
	eventPublisher, err := events.NewResourceEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Events.ResourceQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize resource event publisher: %v", err)
	}

	// Archive
	archiveService := sharedstorage.NewPayloadArchiveService(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Patient
	patientValidator := validation.NewPatientValidator()
	bundleAssembler := bundles.NewBundleAssembler(cachedEngine, bootstrap.ZapLogger)
	patientUsecase := patients.NewPatientUsecase(
		cachedEngine,
		patientValidator,
		bundleAssembler,
		eventPublisher,
		archiveService,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	patientController := controllers.NewPatientController(bootstrap.ZapLogger, patientUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController)
}
