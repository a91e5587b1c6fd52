package config

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	JWT          AppJWT          `mapstructure:"jwt"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
	Minio        AppMinio        `mapstructure:"minio"`
	Screening    AppScreening    `mapstructure:"screening"`
	Notification AppNotification `mapstructure:"notification"`
	AISummary    AppAISummary    `mapstructure:"ai_summary"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

type AppJWT struct {
	Secret          string `mapstructure:"secret"`
	ExpTimeInMinute int    `mapstructure:"exp_time_in_minute"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}

type AppMinio struct {
	PreSignedUrlExpiryTimeInMinutes int   `mapstructure:"pre_signed_url_expiry_time_in_minutes"`
	ReportUploadMaxSizeInKilobyte   int64 `mapstructure:"report_upload_max_size_in_kilobyte"`
}

// AppScreening holds the per-user submission limiter settings.
type AppScreening struct {
	SubmissionsPerMinute int `mapstructure:"submissions_per_minute"`
	SubmissionBurst      int `mapstructure:"submission_burst"`
}

type AppNotification struct {
	PublishTimeoutInSeconds int `mapstructure:"publish_timeout_in_seconds"`
}

type AppAISummary struct {
	Model               string  `mapstructure:"model"`
	Temperature         float64 `mapstructure:"temperature"`
	MaxTokens           int     `mapstructure:"max_tokens"`
	CacheTTLInMinutes   int     `mapstructure:"cache_ttl_in_minutes"`
	RequestTimeoutInSec int     `mapstructure:"request_timeout_in_sec"`
}
