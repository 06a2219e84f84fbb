package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string
	Database       string
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            getEnv("MONGO_URI", "mongodb://localhost:27017/vrms"),
		Database:       getEnv("MONGO_DATABASE", "vrms"),
		MaxPoolSize:    getEnvAsInt("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:    getEnvAsInt("MONGO_MIN_POOL_SIZE", 5),
		ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:  getEnvAsDuration("MONGO_SOCKET_TIMEOUT", 30*time.Second),
	}
}
