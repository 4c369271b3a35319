package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	CatalogPath      string
	CatalogURL       string
	RabbitMQURI      string
	RabbitMQExchange string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	AllowOrigins     string
	ServiceName      string
	ServiceVersion   string
}

// Load reads configuration from the environment, with a .env file taking
// effect when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		CatalogPath:      getEnvOrDefault("CATALOG_PATH", "config/questions.json"),
		CatalogURL:       getEnvOrDefault("CATALOG_URL", ""),
		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		OpenAIAPIKey:     getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnvOrDefault("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		AllowOrigins:     getEnvOrDefault("ALLOW_ORIGINS", "http://localhost:3000"),
		ServiceName:      getEnvOrDefault("SERVICE_NAME", "leadquiz-service"),
		ServiceVersion:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
