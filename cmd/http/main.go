package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/delivery/http/routers"
	"clinicore-service/internal/app/drivers/database"
	"clinicore-service/internal/app/drivers/logger"
	"clinicore-service/internal/app/drivers/messaging"
	"clinicore-service/internal/app/drivers/storage"
	"clinicore-service/internal/app/services/core/appointments"
	"clinicore-service/internal/app/services/core/auth"
	"clinicore-service/internal/app/services/core/labtests"
	"clinicore-service/internal/app/services/core/patients"
	"clinicore-service/internal/app/services/core/prescriptions"
	"clinicore-service/internal/app/services/core/triage"
	"clinicore-service/internal/app/services/core/users"
	"clinicore-service/internal/app/services/shared/queue"
	redisRepo "clinicore-service/internal/app/services/shared/redis"
	"clinicore-service/internal/app/services/shared/session"
	minioStorage "clinicore-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
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

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)
	storageService := minioStorage.NewMinioStorageService(bootstrap.Minio, bootstrap.DriverConfig)
	queuePublisher := queue.NewQueuePublisher(bootstrap.RabbitMQ)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, sessionService)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, patientMongoRepository, sessionService)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Prescription
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionMongoRepository, patientMongoRepository, sessionService)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// Lab test
	labTestMongoRepository := labtests.NewLabTestMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	labTestUsecase := labtests.NewLabTestUsecase(
		labTestMongoRepository,
		patientMongoRepository,
		sessionService,
		storageService,
		queuePublisher,
		bootstrap.InternalConfig,
	)
	labTestController := labtests.NewLabTestController(bootstrap.Logger, labTestUsecase, bootstrap.InternalConfig)

	// Triage
	triageMongoRepository := triage.NewTriageMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	triageUsecase := triage.NewTriageUsecase(triageMongoRepository, patientMongoRepository, sessionService)
	triageController := triage.NewTriageController(bootstrap.Logger, triageUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		appointmentController,
		prescriptionController,
		labTestController,
		triageController,
	)
}
