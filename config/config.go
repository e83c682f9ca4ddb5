// Package config reads runtime settings from the environment, loading a .env
// file first when one exists.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/lachapa-pdv/utils"
)

const (
	GatewayMock     = "mock"
	GatewayDatabase = "database"

	PrinterPDF = "pdf"
	PrinterLog = "log"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver string
	DBDSN    string

	OrderGateway  string
	MockAPIDelay  time.Duration
	APITimeout    time.Duration
	SyncInterval  time.Duration
	RetryInterval time.Duration
	PrinterKind   string
	PrintSpoolDir string

	RabbitURL      string
	RabbitExchange string

	JWTSecret  string
	PINHash    map[string]string
	CORSOrigin string
	RateLimit  float64
	RateBurst  int
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", "file:lachapa?mode=memory&cache=shared"),
		OrderGateway:   getEnv("ORDER_GATEWAY", GatewayMock),
		MockAPIDelay:   getDuration("MOCK_API_DELAY", 300*time.Millisecond),
		APITimeout:     getDuration("API_TIMEOUT", 10*time.Second),
		SyncInterval:   getDuration("ORDER_SYNC_INTERVAL", 0),
		RetryInterval:  getDuration("API_RETRY_INTERVAL", 30*time.Second),
		PrinterKind:    getEnv("PRINTER", PrinterLog),
		PrintSpoolDir:  getEnv("PRINT_SPOOL_DIR", "./spool"),
		RabbitURL:      os.Getenv("RABBIT_URL"),
		RabbitExchange: getEnv("RABBIT_EXCHANGE", "pdv_events"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		PINHash: map[string]string{
			"admin":   os.Getenv("ADMIN_PIN_HASH"),
			"cashier": os.Getenv("CASHIER_PIN_HASH"),
			"kitchen": os.Getenv("KITCHEN_PIN_HASH"),
		},
		CORSOrigin:     getEnv("CORS_ORIGIN", "*"),
		RateLimit:      getFloat("RATE_LIMIT", 50),
		RateBurst:      getInt("RATE_BURST", 20),
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"gateway": cfg.OrderGateway,
		"printer": cfg.PrinterKind,
		"db":      cfg.DBDriver,
		"rabbit":  cfg.RabbitURL != "",
		"auth":    cfg.JWTSecret != "",
	}).Info("config loaded")
	return cfg
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getDuration accepts Go durations ("2s") or a bare number of milliseconds.
func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	utils.ErrorLogger.Printf("invalid duration for %s: %q, using %s", k, v, def)
	return def
}

func getFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		utils.ErrorLogger.Printf("invalid number for %s: %q, using %v", k, v, def)
		return def
	}
	return f
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		utils.ErrorLogger.Printf("invalid number for %s: %q, using %d", k, v, def)
		return def
	}
	return n
}
