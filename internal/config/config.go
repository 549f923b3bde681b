package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BinanceBaseURL   string
	Symbols          []string
	Timeframes       []string
	KlineLimit       int
	FetchDelayMs     int
	ScanWorkers      int
	ScanSchedule     string // empty = single scan, otherwise "@every" interval like "15m"
	TelegramBotToken string
	TelegramChatID   string
}

var AppConfig *Config

// Load reads environment variables and initializes the global config
func Load() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	AppConfig = &Config{
		BinanceBaseURL:   getEnv("BINANCE_BASE_URL", "https://api.binance.com"),
		Symbols:          getEnvAsSlice("SYMBOLS", "BTCUSDT"),
		Timeframes:       getEnvAsSlice("TIMEFRAMES", "15m,1h,4h,1d"),
		KlineLimit:       getEnvAsInt("KLINE_LIMIT", 100),
		FetchDelayMs:     getEnvAsInt("FETCH_DELAY_MS", 250),
		ScanWorkers:      getEnvAsInt("SCAN_WORKERS", 4),
		ScanSchedule:     getEnv("SCAN_SCHEDULE", ""),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}

	log.Println("✅ Configuration loaded successfully")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Invalid integer for %s=%q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvAsSlice(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
