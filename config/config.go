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
	Server ServerConfig
	Sheet  SheetConfig
	IFood  IFoodConfig
	Redis  RedisConfig
	Cart   CartConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// SheetConfig points at the published spreadsheet acting as the store CMS.
type SheetConfig struct {
	BaseURL string
}

// IFoodConfig holds the delivery-catalog integration toggle and credentials.
type IFoodConfig struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	MerchantID   string
	BaseURL      string
	TokenTTL     time.Duration
	CatalogTTL   time.Duration
	CategoryTTL  time.Duration
	ItemsTTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CartConfig controls session cart persistence.
type CartConfig struct {
	TTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Sheet: SheetConfig{
			BaseURL: getEnv("SHEET_BASE_URL", ""),
		},
		IFood: IFoodConfig{
			Enabled:      parseBool(getEnv("ENABLE_IFOOD", "false")),
			ClientID:     getEnv("IFOOD_CLIENT_ID", ""),
			ClientSecret: getEnv("IFOOD_CLIENT_SECRET", ""),
			MerchantID:   getEnv("IFOOD_MERCHANT_ID", ""),
			BaseURL:      getEnv("IFOOD_BASE_URL", ""),
			TokenTTL:     parseDuration(getEnv("IFOOD_TOKEN_TTL", "59m"), 59*time.Minute),
			CatalogTTL:   parseDuration(getEnv("IFOOD_CATALOG_TTL", "1m"), time.Minute),
			CategoryTTL:  parseDuration(getEnv("IFOOD_CATEGORY_TTL", "1m"), time.Minute),
			ItemsTTL:     parseDuration(getEnv("IFOOD_ITEMS_TTL", "1m"), time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Cart: CartConfig{
			TTL: parseDuration(getEnv("CART_TTL", "24h"), 24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, defaultValue)
		return defaultValue
	}
	return duration
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, defaultValue)
		return defaultValue
	}
	return value
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		result = append(result, strings.TrimSpace(part))
	}
	return result
}
