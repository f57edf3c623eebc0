package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	AppEnv      string
	LogLevel    string
	DBPath      string
	CatalogPath string

	DiagnosisEndpoint string
	DiagnosisAPIKey   string
	DiagnosisTimeout  time.Duration

	GuideAllowedDomains []string
	GuideMaxBytes       int

	HistoryMaxLimit      int
	HistoryRetentionDays int
	HistoryPruneSchedule string

	// EnvFile is false when no .env file was found.
	EnvFile bool
}

func (c AppConfig) Development() bool { return c.AppEnv == "development" }

func Load() AppConfig {
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(get(k, "")); err == nil && n >= 0 {
			return n
		}
		return def
	}
	getDur := func(k string, def time.Duration) time.Duration {
		if d, err := time.ParseDuration(get(k, "")); err == nil && d > 0 {
			return d
		}
		return def
	}

	return AppConfig{
		Port:                 get("PORT", "8080"),
		AppEnv:               get("APP_ENV", "production"),
		LogLevel:             get("LOG_LEVEL", "info"),
		DBPath:               get("DB_PATH", "cropadvisor.db"),
		CatalogPath:          get("CROP_CATALOG_PATH", ""),
		DiagnosisEndpoint:    get("DIAGNOSIS_ENDPOINT", ""),
		DiagnosisAPIKey:      get("DIAGNOSIS_API_KEY", ""),
		DiagnosisTimeout:     getDur("DIAGNOSIS_TIMEOUT", 20*time.Second),
		GuideAllowedDomains:  splitList(get("GUIDE_ALLOWED_DOMAINS", "")),
		GuideMaxBytes:        getInt("GUIDE_MAX_BYTES", 1500000),
		HistoryMaxLimit:      getInt("HISTORY_MAX_LIMIT", 50),
		HistoryRetentionDays: getInt("HISTORY_RETENTION_DAYS", 90),
		HistoryPruneSchedule: get("HISTORY_PRUNE_SCHEDULE", "@daily"),
		EnvFile:              envErr == nil,
	}
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
