package weather

import (
	"strings"
	"time"
)

const (
	DefaultCacheTTL        = 15 * time.Minute
	DefaultDefaultLocation = "Johannesburg"
)

// Options configures the weather UseCase. Zero values get defaults.
type Options struct {
	CacheTTL        time.Duration
	DefaultLocation string
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if strings.TrimSpace(o.DefaultLocation) == "" {
		o.DefaultLocation = DefaultDefaultLocation
	}
	return o
}

// LocationKey is the cache key for a location: the input with surrounding
// whitespace removed.
func LocationKey(location string) string {
	return strings.TrimSpace(location)
}
