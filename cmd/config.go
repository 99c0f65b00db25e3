package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddress enables the distributed order lock when set.
	RedisAddress string
	OrderLockTTL time.Duration

	LogLevel  string
	LogFormat string

	RegionCode       string
	ShelfLifeYears   int
	NearExpiryMonths int
	DBAutoMigrate    bool

	// Packing lists stack CartonsPerPallet cartons per pallet and add
	// PalletTareKg of gross weight for each.
	CartonsPerPallet int
	PalletTareKg     decimal.Decimal
}

// DSN is the PostgreSQL connection string for both gorm and database/sql.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads envFile into the environment, when the file exists, and
// builds a Config from the environment. Variables already set win over the
// file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var errList []error
	cfg := Config{
		HTTPPort:     stringVar("HTTP_PORT", "8080"),
		DBHost:       stringVar("DB_HOST", "localhost"),
		DBPort:       stringVar("DB_PORT", "5432"),
		DBUser:       stringVar("DB_USER", "postgres"),
		DBPassword:   stringVar("DB_PASSWORD", ""),
		DBName:       stringVar("DB_NAME", "ruboard"),
		DBSslMode:    stringVar("DB_SSLMODE", "disable"),
		RedisAddress: stringVar("REDIS_ADDRESS", ""),
		LogLevel:     stringVar("LOG_LEVEL", "info"),
		LogFormat:    stringVar("LOG_FORMAT", "json"),
		RegionCode:   stringVar("REGION_CODE", "RU"),
	}

	var err error
	if cfg.OrderLockTTL, err = durationVar("ORDER_LOCK_TTL", 10*time.Second); err != nil {
		errList = append(errList, err)
	}
	if cfg.ShelfLifeYears, err = intVar("SHELF_LIFE_YEARS", 3); err != nil {
		errList = append(errList, err)
	}
	if cfg.NearExpiryMonths, err = intVar("NEAR_EXPIRY_MONTHS", 12); err != nil {
		errList = append(errList, err)
	}
	if cfg.DBAutoMigrate, err = boolVar("DB_AUTO_MIGRATE", true); err != nil {
		errList = append(errList, err)
	}
	if cfg.CartonsPerPallet, err = intVar("CARTONS_PER_PALLET", 40); err != nil {
		errList = append(errList, err)
	}
	if cfg.PalletTareKg, err = decimalVar("PALLET_TARE_KG", decimal.NewFromInt(20)); err != nil {
		errList = append(errList, err)
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func stringVar(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intVar(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func durationVar(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}

func boolVar(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func decimalVar(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must be a non-negative number, got %q", key, v)
	}
	return d, nil
}
