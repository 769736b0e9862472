package config

import (
	"yuktah-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "yuktah"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
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
			AccessKey:  utils.GetEnvString("MINIO_ACCESS_KEY", "defaultAccessKey"),
			SecretKey:  utils.GetEnvString("MINIO_SECRET_KEY", "defaultSecretKey"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "yuktah-lab-reports"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			NotificationQueue:          utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "yuktah.emergency.access"),
			LabReportMaxUploadSizeInMB: utils.GetEnvInt("APP_LAB_REPORT_UPLOAD_MAX_SIZE_IN_MB", 6),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 168),
		},
		Gate: Gate{
			PatientLoginPath:  utils.GetEnvString("GATE_PATIENT_LOGIN_PATH", "/login"),
			AdminLoginPath:    utils.GetEnvString("GATE_ADMIN_LOGIN_PATH", "/admin/login"),
			FacilityLoginPath: utils.GetEnvString("GATE_FACILITY_LOGIN_PATH", "/facility/login"),
		},
		Emergency: Emergency{
			CacheTTLInMinute: utils.GetEnvInt("EMERGENCY_CACHE_TTL_IN_MINUTE", 2),
		},
		Summarizer: Summarizer{
			BaseURL:              utils.GetEnvString("SUMMARIZER_BASE_URL", "http://localhost:5555/v1/summarize"),
			APIKey:               utils.GetEnvString("SUMMARIZER_API_KEY", ""),
			TimeoutInSecond:      utils.GetEnvInt("SUMMARIZER_TIMEOUT_IN_SECOND", 20),
			MaxRequestsPerMinute: utils.GetEnvInt("SUMMARIZER_MAX_REQUESTS_PER_MINUTE", 30),
		},
	}
}
