package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process settings read from the environment.
type Config struct {
	DBDriver     string
	DBPath       string
	DatabaseURL  string
	ManifestPath string
	ItemsCSV     string
	AddressesCSV string
	DistancesCSV string
	RedisURL     string
	PlanCacheTTL time.Duration
	Port         string
}

// LoadEnv loads a .env file when present. Missing files are not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid %s=%q, using %s", key, v, fallback)
	return fallback
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		DBDriver:     Get("DB_DRIVER", "sqlite"),
		DBPath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		ManifestPath: Get("MANIFEST_PATH", "data/manifest.json"),
		ItemsCSV:     Get("ITEMS_CSV", "data/csv/package_data.csv"),
		AddressesCSV: Get("ADDRESSES_CSV", "data/csv/street_addresses.csv"),
		DistancesCSV: Get("DISTANCES_CSV", "data/csv/distance_table.csv"),
		RedisURL:     Get("REDIS_URL", ""),
		PlanCacheTTL: getDuration("PLAN_CACHE_TTL", 24*time.Hour),
		Port:         Get("PORT", "8080"),
	}
}
