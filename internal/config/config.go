package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Services ServiceConfig
	Keys     APIKeys
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

// ServiceConfig holds the endpoints of the collaborator services
// (the marketplace backend exposing FAQs and the product catalog).
type ServiceConfig struct {
	FaqAPIURL     string
	ProductAPIURL string
	FetchTimeout  time.Duration
}

type APIKeys struct {
	Groq string
}

type AIConfig struct {
	LLMProvider   string // "groq" or "ollama"
	LLMModel      string // e.g. "llama-3.1-8b-instant", "llama3"
	OllamaBaseURL string
	Temperature   float64
	MaxTokens     int
	Timeout       time.Duration
}

// ChatConfig hoists the matcher and classifier tuning values out of the
// orchestrator branches so behavior is data-driven and testable.
type ChatConfig struct {
	FaqMatchThreshold float64
	ContextMaxItems   int
	QueryMaxLen       int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Services: ServiceConfig{
			FaqAPIURL:     getEnv("FAQ_API_URL", "http://localhost:8080/api/faqs"),
			ProductAPIURL: getEnv("PRODUCT_API_URL", "http://localhost:8080/api/products"),
			FetchTimeout:  time.Duration(getEnvAsInt("FETCH_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Keys: APIKeys{
			Groq: getEnv("GROQ_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "groq"),
			LLMModel:      getEnv("LLM_MODEL", "llama-3.1-8b-instant"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Temperature:   getEnvAsFloat("LLM_TEMPERATURE", 0.4),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 256),
			Timeout:       time.Duration(getEnvAsInt("LLM_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Chat: ChatConfig{
			FaqMatchThreshold: getEnvAsFloat("FAQ_MATCH_THRESHOLD", 1.4),
			ContextMaxItems:   getEnvAsInt("PRODUCT_CONTEXT_MAX_ITEMS", 5),
			QueryMaxLen:       getEnvAsInt("PRODUCT_QUERY_MAX_LEN", 100),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
