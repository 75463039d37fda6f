package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the process environment when present.
// Variables already set in the environment take precedence.
func Load(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns key parsed as an integer, or fallback when unset or invalid.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid integer key=%s value=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// Service settings shared by the binaries.
type Settings struct {
	DBDriver            string
	DBPath              string
	DatabaseURL         string
	SeedPath            string
	Port                string
	RedisAddr           string
	RedisTTLSeconds     int
	ReverseWeightPolicy string
}

func FromEnv() Settings {
	return Settings{
		DBDriver:            Get("DB_DRIVER", "sqlite"),
		DBPath:              Get("DB_PATH", "data/app.db"),
		DatabaseURL:         Get("DATABASE_URL", ""),
		SeedPath:            Get("SEED_PATH", "data/seeds/network.json"),
		Port:                Get("PORT", "8080"),
		RedisAddr:           Get("REDIS_ADDR", ""),
		RedisTTLSeconds:     GetInt("REDIS_TTL_SECONDS", 86400),
		ReverseWeightPolicy: Get("REVERSE_WEIGHT_POLICY", "mirror"),
	}
}

// DSN returns the connection string for the configured driver.
func (s Settings) DSN() string {
	if s.DBDriver == "pgx" {
		return s.DatabaseURL
	}
	return s.DBPath
}
