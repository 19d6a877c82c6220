package constants

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

// GetCorsOrigins reads a comma separated list; "*" allows everyone.
func GetCorsOrigins() []string {
	var res []string
	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			res = append(res, origin)
		}
	}
	return res
}

func GetExportDir() string {
	return getEnv("EXPORT_DIR", "./out")
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

func GetEnvironment() string {
	return getEnv("ENVIRONMENT", "development")
}

func GetMidiInPort() int {
	port, err := strconv.Atoi(getEnv("MIDI_IN_PORT", "0"))
	if err != nil || port < 0 {
		return 0
	}
	return port
}

func GetDebounce() time.Duration {
	ms, err := strconv.Atoi(getEnv("DEBOUNCE_MS", "150"))
	if err != nil || ms <= 0 {
		return 150 * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// ticks per quarter note in exported files
const TicksPerQuarter = 960

const DefaultVelocity = 100
