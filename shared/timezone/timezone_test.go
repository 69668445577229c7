package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/shared/timezone"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Africa/Cairo")
	assert.Equal(t, "Africa/Cairo", timezone.GetLocation().String())
	assert.Equal(t, "Africa/Cairo", timezone.Now().Location().String())

	timezone.Init("Mars/Olympus")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.Init("")
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestParseAndFormat(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Africa/Cairo")

	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Africa/Cairo", parsed.Location().String())

	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 14:00", timezone.Format(utc, "2006-01-02 15:04"))
}
