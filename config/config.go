package config

import (
	"os"

	"github.com/joho/godotenv"
)

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress    string
	OrderEventsTopic string
	ConsumerGroupID  string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort             string
	MetricsPort             string
	PostgreSQLConfig        PostgreSQLConfig
	KafkaConfig             KafkaConfig
	RazorpayConfig          RazorpayConfig
	OrderServiceHost        string
	NotificationServiceHost string
	TracingConfig           TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:    os.Getenv("BROKER_ADDRESS"),
			OrderEventsTopic: os.Getenv("ORDER_EVENTS_TOPIC"),
			ConsumerGroupID:  os.Getenv("CONSUMER_GROUP_ID"),
		},
		RazorpayConfig: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
		OrderServiceHost:        os.Getenv("ORDER_SERVICE_HOST"),
		NotificationServiceHost: os.Getenv("NOTIFICATION_SERVICE_HOST"),
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}
