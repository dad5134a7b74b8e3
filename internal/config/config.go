package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         string
	MongoURI         string
	MongoDBName      string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64
	RedisAddr        string
	RedisPassword    string
	KafkaBrokers     []string
	JWTSecret        string
	CORSOrigins      []string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("no .env file loaded: %v", err)
	}

	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "5000"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:      getEnv("MONGODB_NAME", "furnishop"),
		MongoMaxPoolSize: getEnvUint("MONGODB_MAX_POOL_SIZE", 100),
		MongoMinPoolSize: getEnvUint("MONGODB_MIN_POOL_SIZE", 10),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "")),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGIN", "*")),
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("invalid %s value %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
