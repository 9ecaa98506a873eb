// Package timezone resolves the zones booking dates are interpreted in.
// Tenants carry their own IANA zone; APP_TIMEZONE is the fallback.
package timezone

import (
	"sync"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"

	"github.com/rs/zerolog/log"
)

var fallback = sync.OnceValue(func() *time.Location {
	name := config.Get().App.Timezone
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("invalid APP_TIMEZONE, using UTC")

		return time.UTC
	}

	return loc
})

// Default returns the application zone.
func Default() *time.Location {
	return fallback()
}

// Now returns the current instant in the application zone.
func Now() time.Time {
	return time.Now().In(Default())
}

// Resolve loads a tenant zone, falling back to the application zone when
// the name is empty or unknown.
func Resolve(name string) *time.Location {
	if name == "" {
		return Default()
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, using application timezone")

		return Default()
	}

	return loc
}

// StartOfDay truncates t to local midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
