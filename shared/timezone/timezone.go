package timezone

import (
	"hotel/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var location = sync.OnceValue(func() *time.Location {
	return load(config.Get().App.Timezone)
})

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msgf("Failed to load timezone, falling back to %s", fallbackZone)

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Location is the zone from APP_TIMEZONE, loaded on first use.
func Location() *time.Location {
	return location()
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// FormatPtr formats an optional timestamp, returning nil for a missing one.
func FormatPtr(t *time.Time, layout string) *string {
	if t == nil || t.IsZero() {
		return nil
	}

	res := Format(*t, layout)

	return &res
}
