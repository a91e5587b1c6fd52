package main

import (
	"context"
	"errors"
	"log"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/app/delivery/http/controllers"
	"mindcheck-service/internal/app/delivery/http/middlewares"
	"mindcheck-service/internal/app/delivery/http/routers"
	"mindcheck-service/internal/app/drivers/ai"
	"mindcheck-service/internal/app/drivers/database"
	"mindcheck-service/internal/app/drivers/logger"
	"mindcheck-service/internal/app/drivers/messaging"
	"mindcheck-service/internal/app/drivers/storage"
	"mindcheck-service/internal/app/services/core/assessments"
	"mindcheck-service/internal/app/services/core/auth"
	"mindcheck-service/internal/app/services/core/doctors"
	"mindcheck-service/internal/app/services/core/notifications"
	"mindcheck-service/internal/app/services/core/preassessments"
	"mindcheck-service/internal/app/services/core/scoring"
	"mindcheck-service/internal/app/services/core/screenings"
	"mindcheck-service/internal/app/services/core/session"
	"mindcheck-service/internal/app/services/core/users"
	"mindcheck-service/internal/app/services/shared/publisher"
	"mindcheck-service/internal/app/services/shared/redis"
	sharedStorage "mindcheck-service/internal/app/services/shared/storage"
	"mindcheck-service/internal/app/services/shared/summarizer"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		OpenAI:         ai.NewOpenAI(driverConfig),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		bootstrap.Logger.Info("Server starting", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			bootstrap.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrap.Logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrap.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to close drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	openAISummarizer := summarizer.NewOpenAISummarizer(bootstrap.OpenAI, bootstrap.InternalConfig.AISummary)

	notificationQueue := bootstrap.InternalConfig.RabbitMQ.NotificationQueue
	notificationChannel := messaging.NewChannel(bootstrap.RabbitMQ, notificationQueue)
	notificationPublisher := publisher.NewNotificationPublisher(notificationChannel, notificationQueue)

	scoringEngine := scoring.NewEngine()

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName, bootstrap.Logger)
	assessmentMongoRepository := assessments.NewAssessmentMongoRepository(bootstrap.MongoDB, dbName, bootstrap.Logger)
	preAssessmentQuestionMongoRepository := preassessments.NewPreAssessmentQuestionMongoRepository(bootstrap.MongoDB, dbName, bootstrap.Logger)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName, bootstrap.Logger)

	// Usecases
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentMongoRepository, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, notificationPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	screeningUsecase := screenings.NewScreeningUsecase(assessmentMongoRepository, notificationUsecase, scoringEngine, bootstrap.Logger)
	preAssessmentUsecase := preassessments.NewPreAssessmentUsecase(assessmentMongoRepository, preAssessmentQuestionMongoRepository, scoringEngine, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(
		userMongoRepository,
		assessmentMongoRepository,
		redisRepository,
		minioStorage,
		openAISummarizer,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.Logger,
	)

	// Delivery
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Auth:          controllers.NewAuthController(bootstrap.Logger, authUsecase, userUsecase, bootstrap.InternalConfig),
		User:          controllers.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig),
		Assessment:    controllers.NewAssessmentController(bootstrap.Logger, assessmentUsecase, bootstrap.InternalConfig),
		Screening:     controllers.NewScreeningController(bootstrap.Logger, screeningUsecase, bootstrap.InternalConfig),
		PreAssessment: controllers.NewPreAssessmentController(bootstrap.Logger, preAssessmentUsecase, bootstrap.InternalConfig),
		Notification:  controllers.NewNotificationController(bootstrap.Logger, notificationUsecase, bootstrap.InternalConfig),
		Doctor:        controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig),
	})
}
