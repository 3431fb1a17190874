package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

type Config struct {
	PracticumToken string
	TelegramToken  string
	ChatID         int64

	Endpoint       string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	LogLevel       string

	MongoDBURI   string
	DatabaseName string
}

func Load() *Config {
	_ = godotenv.Load()

	required := []string{
		"PRACTICUM_TOKEN",
		"TELEGRAM_TOKEN",
		"TELEGRAM_CHAT_ID",
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %s", strings.Join(missing, ", "))
	}

	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		log.Fatalf("TELEGRAM_CHAT_ID must be a numeric chat id: %v", err)
	}

	return &Config{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		ChatID:         chatID,
		Endpoint:       getEnv("ENDPOINT", defaultEndpoint),
		PollInterval:   getEnvSeconds("POLL_INTERVAL", 600),
		RequestTimeout: getEnvSeconds("REQUEST_TIMEOUT", 10),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MongoDBURI:     os.Getenv("MONGODB_URI"),
		DatabaseName:   getEnv("DATABASE_NAME", "homework_bot"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return time.Duration(fallback) * time.Second
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Fatalf("%s must be a positive number of seconds, got %q", key, value)
	}
	return time.Duration(n) * time.Second
}
