package helpers

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nullpointers/attendance-backend/internal/pkg/apperrors"
)

// DateLayout is the wire format for attendance dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses an attendance date in DateLayout form.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "date must be in YYYY-MM-DD format")
	}
	return d, nil
}
