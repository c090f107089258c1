package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	// Question bank backing: "file" re-reads BankFile on every load,
	// "sqlite"/"postgres" read the questions table via DBDSN.
	BankDriver string
	BankFile   string
	DBDSN      string

	DefaultMode string

	CORSOrigins []string

	// Idle sessions older than this are swept from memory.
	SessionTTL time.Duration
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:    addr,
		BankDriver:  envOr("BANK_DRIVER", "file"),
		BankFile:    envOr("BANK_FILE", "test.csv"),
		DBDSN:       envOr("DB_DSN", ""),
		DefaultMode: envOr("DEFAULT_MODE", "sequential"),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
		SessionTTL:  envDur("SESSION_TTL", 2*time.Hour),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
