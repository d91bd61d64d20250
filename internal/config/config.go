package config

import (
	"github.com/spf13/viper"
)

// Config is populated from environment variables; in a cluster the pod spec
// carries the DB and queue settings, locally the defaults point at
// docker-compose services.
type Config struct {
	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            string `mapstructure:"DB_PORT"`
	DBUser            string `mapstructure:"DB_USER"`
	DBPassword        string `mapstructure:"DB_PASSWORD"`
	DBName            string `mapstructure:"DB_NAME"`
	ServerPort        string `mapstructure:"SERVER_PORT"`
	AWSRegion         string `mapstructure:"AWS_REGION"`
	NotifySQSQueueURL string `mapstructure:"NOTIFY_SQS_QUEUE_URL"`
	ExportSQSQueueURL string `mapstructure:"EXPORT_SQS_QUEUE_URL"`
	AWSEndpoint       string `mapstructure:"AWS_ENDPOINT"`
	PayrollAPIURL     string `mapstructure:"PAYROLL_API_URL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes     int    `mapstructure:"JWT_TTL_MINUTES"`
	EmailSender       string `mapstructure:"EMAIL_SENDER"`
	DefaultLocation   string `mapstructure:"DEFAULT_LOCATION"`
	IsLocalDev        bool   `mapstructure:"IS_LOCAL_DEV"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("DB_HOST", "db")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "pertitrack_db")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("NOTIFY_SQS_QUEUE_URL", "http://localstack:4566/000000000000/notify-queue")
	viper.SetDefault("EXPORT_SQS_QUEUE_URL", "http://localstack:4566/000000000000/export-queue")
	viper.SetDefault("AWS_ENDPOINT", "http://localstack:4566")
	viper.SetDefault("PAYROLL_API_URL", "http://localhost:8081/")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.SetDefault("JWT_TTL_MINUTES", 480)
	viper.SetDefault("EMAIL_SENDER", "noreply@pertitrack.local")
	viper.SetDefault("DEFAULT_LOCATION", "OFFICE")
	viper.SetDefault("IS_LOCAL_DEV", false)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
