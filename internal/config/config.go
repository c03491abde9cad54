// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for databases (always absolute)
	Port     int
	LogLevel string
	DevMode  bool
	Engine   *EngineConfig
}

// EngineConfig holds analytics engine tunables.
type EngineConfig struct {
	MinFundAUM      float64 // eligibility floor in currency units
	CoreSplit       float64 // passive core share of each hybrid sleeve, fraction
	DriftThresholds DriftThresholdConfig
}

// DriftThresholdConfig holds rebalance drift bands in percentage points.
type DriftThresholdConfig struct {
	CriticalPct    float64
	WarningShare   float64 // warning band as a share of the critical band
	MinTradeAmount float64 // currency floor below which trades are skipped
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("OPTIMIZER_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:  absDataDir,
		Port:     getEnvAsInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DevMode:  getEnvAsBool("DEV_MODE", false),
		Engine:   loadEngineConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Engine.CoreSplit < 0 || c.Engine.CoreSplit > 1 {
		return fmt.Errorf("core split must be a fraction, got %f", c.Engine.CoreSplit)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// loadEngineConfig loads engine tunables with defaults matching the
// module-level defaults used when no config is supplied.
func loadEngineConfig() *EngineConfig {
	return &EngineConfig{
		MinFundAUM: getEnvAsFloat("MIN_FUND_AUM", 100e6),
		CoreSplit:  getEnvAsFloat("CORE_SPLIT", 0.50),
		DriftThresholds: DriftThresholdConfig{
			CriticalPct:    getEnvAsFloat("DRIFT_CRITICAL_PCT", 5.0),
			WarningShare:   getEnvAsFloat("DRIFT_WARNING_SHARE", 0.6),
			MinTradeAmount: getEnvAsFloat("MIN_TRADE_AMOUNT", 100.0),
		},
	}
}
