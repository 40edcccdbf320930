package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables, also passed to extensions.
const (
	EnvFile     = "WALLET_FILE"
	EnvCurrency = "WALLET_CURRENCY"
	EnvVerbose  = "WALLET_VERBOSE"
)

// Defaults when neither a flag nor an environment variable is set.
const (
	DefaultFile     = "wallet.txt"
	DefaultCurrency = "RUB"
)

// Config is the resolved configuration of the application.
type Config struct {
	File     string // record file
	Currency string // display currency of reports
	Verbose  bool
}

// LoadConfig resolves the configuration: flags override environment
// variables, which override defaults. A .env file in the current directory
// is loaded first, if present.
func LoadConfig() Config {
	_ = godotenv.Load() // optional

	c := Config{
		File:     getEnv(EnvFile, DefaultFile),
		Currency: getEnv(EnvCurrency, DefaultCurrency),
		Verbose:  getEnvBool(EnvVerbose, false),
	}
	if *recordFile != "" {
		c.File = *recordFile
	}
	if *currency != "" {
		c.Currency = *currency
	}
	if *Verbose {
		c.Verbose = true
	}
	return c
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
