package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/delivery/http/middlewares"
	"yuktah-service/internal/app/delivery/http/routers"
	"yuktah-service/internal/app/drivers/database"
	"yuktah-service/internal/app/drivers/logger"
	"yuktah-service/internal/app/drivers/messaging"
	"yuktah-service/internal/app/drivers/storage"
	"yuktah-service/internal/app/services/auth"
	"yuktah-service/internal/app/services/emergencytokens"
	"yuktah-service/internal/app/services/facilities"
	"yuktah-service/internal/app/services/labreports"
	"yuktah-service/internal/app/services/medicalinfo"
	"yuktah-service/internal/app/services/medicines"
	"yuktah-service/internal/app/services/shared/notifications"
	sharedredis "yuktah-service/internal/app/services/shared/redis"
	sharedstorage "yuktah-service/internal/app/services/shared/storage"
	"yuktah-service/internal/app/services/shared/summarizer"
	"yuktah-service/internal/app/services/staff"
	"yuktah-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQConnection(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

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

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	objectStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	summarizerClient := summarizer.NewHTTPSummarizer(bootstrap.InternalConfig, bootstrap.Logger)

	publisher, err := notifications.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue)
	if err != nil {
		log.Fatalf("Error declaring notification queue: %v", err)
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	facilityMongoRepository := facilities.NewFacilityMongoRepository(bootstrap.MongoDB, dbName)
	staffMongoRepository := staff.NewStaffMongoRepository(bootstrap.MongoDB, dbName)
	medicineMongoRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionMongoRepository := medicines.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	dispenseMongoRepository := medicines.NewDispenseMongoRepository(bootstrap.MongoDB, dbName)
	medicalInfoMongoRepository := medicalinfo.NewMedicalInfoMongoRepository(bootstrap.MongoDB, dbName)
	emergencyTokenMongoRepository := emergencytokens.NewEmergencyTokenMongoRepository(bootstrap.MongoDB, dbName)
	labReportMongoRepository := labreports.NewLabReportMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, userMongoRepository, facilityMongoRepository, bootstrap.InternalConfig)
	userUsecase := users.NewUserUsecase(bootstrap.Logger, userMongoRepository, emergencyTokenMongoRepository)
	facilityUsecase := facilities.NewFacilityUsecase(bootstrap.Logger, facilityMongoRepository)
	staffUsecase := staff.NewStaffUsecase(bootstrap.Logger, staffMongoRepository)
	medicineUsecase := medicines.NewMedicineUsecase(bootstrap.Logger, medicineMongoRepository, prescriptionMongoRepository, dispenseMongoRepository, userMongoRepository)
	medicalInfoUsecase := medicalinfo.NewMedicalInfoUsecase(bootstrap.Logger, medicalInfoMongoRepository, emergencyTokenMongoRepository, redisRepository)
	emergencyTokenUsecase := emergencytokens.NewEmergencyTokenUsecase(
		bootstrap.Logger,
		emergencyTokenMongoRepository,
		userMongoRepository,
		medicalInfoMongoRepository,
		redisRepository,
		publisher,
		bootstrap.InternalConfig.Emergency.CacheTTLInMinute,
	)
	labReportUsecase := labreports.NewLabReportUsecase(bootstrap.Logger, labReportMongoRepository, objectStorage, summarizerClient)

	// Controllers
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)
	facilityController := facilities.NewFacilityController(bootstrap.Logger, facilityUsecase)
	staffController := staff.NewStaffController(bootstrap.Logger, staffUsecase)
	medicineController := medicines.NewMedicineController(bootstrap.Logger, medicineUsecase)
	medicalInfoController := medicalinfo.NewMedicalInfoController(bootstrap.Logger, medicalInfoUsecase)
	labReportController := labreports.NewLabReportController(bootstrap.Logger, labReportUsecase, bootstrap.InternalConfig.App.LabReportMaxUploadSizeInMB)
	emergencyTokenController := emergencytokens.NewEmergencyTokenController(bootstrap.Logger, emergencyTokenUsecase, bootstrap.InternalConfig.Emergency.CacheTTLInMinute)

	// Middlewares and routes
	mw := middlewares.NewMiddlewares(
		bootstrap.Logger,
		facilityUsecase,
		bootstrap.InternalConfig,
		routers.DefaultRouteRules(bootstrap.InternalConfig),
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		userController,
		facilityController,
		staffController,
		medicineController,
		medicalInfoController,
		labReportController,
		emergencyTokenController,
	)
}
