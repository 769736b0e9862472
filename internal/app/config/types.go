package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		AccessKey  string
		SecretKey  string
		BucketName string
		UseSSL     bool
	}

	InternalConfig struct {
		App        App
		JWT        JWT
		Gate       Gate
		Emergency  Emergency
		Summarizer Summarizer
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		NotificationQueue          string
		LabReportMaxUploadSizeInMB int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Gate struct {
		PatientLoginPath  string
		AdminLoginPath    string
		FacilityLoginPath string
	}

	Emergency struct {
		CacheTTLInMinute int
	}

	Summarizer struct {
		BaseURL              string
		APIKey               string
		TimeoutInSecond      int
		MaxRequestsPerMinute int
	}
)
