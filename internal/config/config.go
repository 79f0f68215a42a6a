package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Admin      AdminConfig
	Migrations MigrationsConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Enabled bool
	Topics  TopicConfig
}

type TopicConfig struct {
	EventCreated       string
	EventUpdated       string
	EventDeleted       string
	SubmissionReceived string
	SubmissionApproved string
	ReportFiled        string
}

// AdminConfig holds the single shared moderation secret. There are no
// per-user accounts.
type AdminConfig struct {
	Password string
}

type MigrationsConfig struct {
	Dir  string
	Auto bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:          getEnv("POSTGRES_DSN", ""),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 25),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			CacheTTL: time.Duration(getEnvInt("EVENTS_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Enabled: getEnvBool("KAFKA_ENABLED", true),
			Topics: TopicConfig{
				EventCreated:       getEnv("KAFKA_TOPIC_EVENT_CREATED", "gigboard.events.created"),
				EventUpdated:       getEnv("KAFKA_TOPIC_EVENT_UPDATED", "gigboard.events.updated"),
				EventDeleted:       getEnv("KAFKA_TOPIC_EVENT_DELETED", "gigboard.events.deleted"),
				SubmissionReceived: getEnv("KAFKA_TOPIC_SUBMISSION_RECEIVED", "gigboard.submissions.received"),
				SubmissionApproved: getEnv("KAFKA_TOPIC_SUBMISSION_APPROVED", "gigboard.submissions.approved"),
				ReportFiled:        getEnv("KAFKA_TOPIC_REPORT_FILED", "gigboard.reports.filed"),
			},
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Migrations: MigrationsConfig{
			Dir:  getEnv("MIGRATIONS_DIR", "./migrations"),
			Auto: getEnvBool("AUTO_MIGRATE", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
