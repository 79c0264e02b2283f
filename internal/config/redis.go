package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	HeadingStream  string
	PositionStream string
}

// LoadEnv loads a .env file into the process environment if one exists
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
}

// GetRedisConfig returns the Redis settings from the config file, with
// environment variables taking precedence
func (c *Config) GetRedisConfig() RedisConfig {
	db := c.Redis.DB
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsed, err := strconv.Atoi(dbStr); err == nil {
			db = parsed
		}
	}

	return RedisConfig{
		Addr:           getEnv("REDIS_ADDR", c.Redis.Addr),
		Password:       getEnv("REDIS_PASSWORD", c.Redis.Password),
		DB:             db,
		HeadingStream:  getEnv("REDIS_HEADING_STREAM", c.Redis.HeadingStream),
		PositionStream: getEnv("REDIS_POSITION_STREAM", c.Redis.PositionStream),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
