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
	Port           string
	AllowedOrigins []string
	FrontendURL    string
	RedisURL       string
	RedisPassword  string
	ReplayCacheTTL time.Duration
	PlayerASymbol  string
	PlayerBSymbol  string
}

var AppConfig *Config

// LoadEnv reads .env from the working directory or its parent. A missing
// file is not an error; the process environment is used as is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found, using environment variables")
		}
	}
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" && trimmed != frontendURL {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Cache
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	replayCacheTTLSec := GetEnvAsInt("REPLAY_CACHE_TTL_SECONDS", 3600)

	// Console
	playerASymbol := GetEnv("PLAYER_A_SYMBOL", "X")
	playerBSymbol := GetEnv("PLAYER_B_SYMBOL", "O")
	if playerASymbol == playerBSymbol {
		log.Printf("[CONFIG] PLAYER_A_SYMBOL and PLAYER_B_SYMBOL are both %q, using X and O", playerASymbol)
		playerASymbol, playerBSymbol = "X", "O"
	}

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		RedisURL:       redisURL,
		RedisPassword:  redisPassword,
		ReplayCacheTTL: time.Duration(replayCacheTTLSec) * time.Second,
		PlayerASymbol:  playerASymbol,
		PlayerBSymbol:  playerBSymbol,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
