package httpapi

import (
	"github.com/sirupsen/logrus"
)

// NewLogger builds a *logrus.Logger from the textual level/format config
// knobs (SPEC_FULL.md §6.3's LOG_LEVEL/LOG_FORMAT). An unrecognized level
// falls back to Info rather than failing startup over a typo'd env var.
func NewLogger(level, format string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
