package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error or when empty
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: this may run before the logger is configured
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
