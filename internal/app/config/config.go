package config

import (
	"mindcheck-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URL:      utils.GetEnvString("MONGODB_URL", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healthapp"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mindcheck-reports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		OpenAI: OpenAI{
			APIKey:  utils.GetEnvString("OPENAI_API_KEY", ""),
			BaseURL: utils.GetEnvString("OPENAI_BASE_URL", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		JWT: AppJWT{
			Secret:          utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInMinute: utils.GetEnvInt("JWT_EXP_TIME_IN_MINUTE", 30),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "notifications"),
		},
		Minio: AppMinio{
			PreSignedUrlExpiryTimeInMinutes: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_MINUTES", 15),
			ReportUploadMaxSizeInKilobyte:   utils.GetEnvInt64("APP_MINIO_REPORT_UPLOAD_MAX_SIZE_IN_KB", 512),
		},
		Screening: AppScreening{
			SubmissionsPerMinute: utils.GetEnvInt("APP_SCREENING_SUBMISSIONS_PER_MINUTE", 6),
			SubmissionBurst:      utils.GetEnvInt("APP_SCREENING_SUBMISSION_BURST", 3),
		},
		Notification: AppNotification{
			PublishTimeoutInSeconds: utils.GetEnvInt("APP_NOTIFICATION_PUBLISH_TIMEOUT_IN_SECONDS", 5),
		},
		AISummary: AppAISummary{
			Model:               utils.GetEnvString("AI_SUMMARY_MODEL", "gpt-3.5-turbo"),
			Temperature:         utils.GetEnvFloat("AI_SUMMARY_TEMPERATURE", 0.7),
			MaxTokens:           utils.GetEnvInt("AI_SUMMARY_MAX_TOKENS", 500),
			CacheTTLInMinutes:   utils.GetEnvInt("AI_SUMMARY_CACHE_TTL_IN_MINUTES", 60),
			RequestTimeoutInSec: utils.GetEnvInt("AI_SUMMARY_REQUEST_TIMEOUT_IN_SEC", 30),
		},
	}
}
