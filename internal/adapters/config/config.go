package config

import "github.com/joho/godotenv"

type StorageConfig struct {
	// DataFile is the flat file holding the serialized snapshot.
	DataFile string
}

type CheckoutConfig struct {
	// MaxLineItems caps the line items accepted per transaction.
	MaxLineItems int
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Storage  StorageConfig
	Checkout CheckoutConfig
	Logger   LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Storage: StorageConfig{
			DataFile: getStringEnv("GROCERY_DATA_FILE", "grocery-data.json"),
		},
		Checkout: CheckoutConfig{
			MaxLineItems: getIntEnv("CHECKOUT_MAX_LINE_ITEMS", 100),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "grocery"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
