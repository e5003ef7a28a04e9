// Package config loads service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/warp/leave-engine/leave"
)

type Config struct {
	App    AppConfig
	Policy PolicyConfig
}

// AppConfig holds HTTP server and logging configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string // no cross-origin access unless listed
}

// PolicyConfig holds the leave policy constants
type PolicyConfig struct {
	Coupling           leave.CouplingMode
	HalfPaidMonthlyCap int
	SickAllowance      int
	PaidEntitlement    int
	SickEntitlement    int
}

// Options returns the engine options of the policy.
func (p PolicyConfig) Options() leave.Options {
	opts := leave.DefaultOptions()
	if p.Coupling != "" {
		opts.Coupling = p.Coupling
	}
	if p.SickAllowance > 0 {
		opts.SickAllowance = p.SickAllowance
	}
	if p.HalfPaidMonthlyCap > 0 {
		opts.HalfPaidMonthlyCap = p.HalfPaidMonthlyCap
	}
	return opts
}

// Entitlements returns the yearly allowances of the policy.
func (p PolicyConfig) Entitlements() leave.Entitlements {
	return leave.Entitlements{PaidPerYear: p.PaidEntitlement, SickPerYear: p.SickEntitlement}
}

// IsProduction reports whether APP_ENV is "production".
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// Load reads .env from the working directory if present, then the
// environment. A missing .env is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	config := &Config{}

	port, err := getInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	config.App = AppConfig{
		Port:           port,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	coupling, err := leave.ParseCouplingMode(getEnv("LEAVE_COUPLING_MODE", string(leave.CouplingStrict)))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_COUPLING_MODE: %w", err)
	}
	config.Policy.Coupling = coupling

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"LEAVE_HALF_PAID_MONTHLY_CAP", 2, &config.Policy.HalfPaidMonthlyCap},
		{"LEAVE_SICK_ALLOWANCE", 2, &config.Policy.SickAllowance},
		{"LEAVE_PAID_ENTITLEMENT", 9, &config.Policy.PaidEntitlement},
		{"LEAVE_SICK_ENTITLEMENT", 2, &config.Policy.SickEntitlement},
	}
	for _, v := range ints {
		n, err := getInt(v.key, v.def)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", v.key)
		}
		*v.dst = n
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
