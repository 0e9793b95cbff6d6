package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB        DBConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Server    ServerConfig
	Scheduler SchedulerConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type KafkaConfig struct {
	Brokers         []string
	LedgerTopic     string
	ConsumerGroupID string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type ServerConfig struct {
	LedgerPort    int
	IndexSyncPort int
}

type SchedulerConfig struct {
	// Интервал запуска обработки регулярных переводов
	Interval time.Duration
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/bank_ledger.db"),
		},
		Kafka: KafkaConfig{
			Brokers:         []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			LedgerTopic:     getEnv("KAFKA_LEDGER_TOPIC", "bank.ledger.entries"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "index-sync-service"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Server: ServerConfig{
			LedgerPort:    getEnvAsInt("LEDGER_SERVICE_PORT", 8080),
			IndexSyncPort: getEnvAsInt("INDEX_SYNC_SERVICE_PORT", 8081),
		},
		Scheduler: SchedulerConfig{
			Interval: getEnvAsDuration("SCHEDULER_INTERVAL", 24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
