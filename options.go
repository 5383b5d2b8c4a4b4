package worldgen

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans string values of a response before they reach the record.
type Sanitizer interface {
	Sanitize(s string) string
}

// StrictSanitizer strips all markup from string values.
func StrictSanitizer() Sanitizer {
	return bluemonday.StrictPolicy()
}

type options struct {
	logger    *slog.Logger
	sanitizer Sanitizer
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSanitizer runs s over every string in a response. Off by default.
func WithSanitizer(s Sanitizer) Option {
	return func(o *options) {
		o.sanitizer = s
	}
}
