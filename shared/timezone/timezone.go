package timezone

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

// Init loads an IANA zone name. Empty or unknown names select UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")
		appLocation.Store(time.UTC)

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")
		appLocation.Store(time.UTC)

		return
	}

	appLocation.Store(loc)
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
