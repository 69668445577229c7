// Package timezone keeps the application time zone (APP_TIMEZONE).
//
// Init is called once at boot; until then every helper falls back to UTC.
//
//	timezone.Init(cfg.App.Timezone)
//	now := timezone.Now()
//	t, err := timezone.Parse(time.DateOnly, "2024-01-01")
package timezone
