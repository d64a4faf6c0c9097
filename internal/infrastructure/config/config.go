package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	StoreDriver   string // "sqlite" or "mongo"
	SQLitePath    string
	MongoURI      string
	MongoDatabase string

	// Question generation
	GeneratorProvider string // "ollama", "openai" or "none"
	LLMURL            string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel          string // model name, e.g. "qwen3-8b"
	OpenAIAPIKey      string
	OpenAIModel       string

	// Events; publishing is disabled when RabbitMQURI is empty
	RabbitMQURI      string
	RabbitMQExchange string

	// Background stats updates
	StatsWorkers int
	StatsQueue   int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := loadStorage()
	cfg.ServerAddress = mustGetenv("SERVER_ADDRESS")
	cfg.ShutdownTimeout = mustGetDuration("SHUTDOWN_TIMEOUT")
	cfg.GeneratorProvider = getenvDefault("GENERATOR_PROVIDER", "ollama")
	cfg.LLMURL = getenvDefault("LLM_URL", "http://localhost:1234")
	cfg.LLMModel = getenvDefault("LLM_MODEL", "qwen3-8b")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getenvDefault("OPENAI_MODEL", "gpt-4o")
	cfg.RabbitMQURI = os.Getenv("RABBITMQ_URI")
	cfg.RabbitMQExchange = getenvDefault("RABBITMQ_EXCHANGE", "quiz-events")
	cfg.StatsWorkers = getenvInt("STATS_WORKERS", 4)
	cfg.StatsQueue = getenvInt("STATS_QUEUE", 256)

	switch cfg.GeneratorProvider {
	case "ollama", "none":
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatalf("config: GENERATOR_PROVIDER=openai requires OPENAI_API_KEY")
		}
	default:
		log.Fatalf("config: GENERATOR_PROVIDER=%q must be ollama, openai or none", cfg.GeneratorProvider)
	}

	return cfg
}

// LoadStorage reads only the storage settings. Offline tools use it so
// they do not need the server variables.
func LoadStorage() *Config {
	_ = godotenv.Load()
	return loadStorage()
}

func loadStorage() *Config {
	cfg := &Config{
		StoreDriver:   getenvDefault("STORE_DRIVER", "sqlite"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "quizengine.db"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getenvDefault("MONGO_DATABASE", "quizengine"),
	}

	switch cfg.StoreDriver {
	case "sqlite":
	case "mongo":
		if cfg.MongoURI == "" {
			log.Fatalf("config: STORE_DRIVER=mongo requires MONGO_URI")
		}
	default:
		log.Fatalf("config: STORE_DRIVER=%q must be sqlite or mongo", cfg.StoreDriver)
	}

	return cfg
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q must be a positive integer", k, v)
	}
	return n
}
