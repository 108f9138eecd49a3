package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-02-28", DateKey(ts))
}

func TestSeed(t *testing.T) {
	morning := time.Date(2026, 10, 14, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 14, 23, 59, 0, 0, time.UTC)
	tomorrow := morning.Add(24 * time.Hour)

	assert.Equal(t, Seed(morning, "salt", "easy"), Seed(evening, "salt", "easy"))
	assert.NotEqual(t, Seed(morning, "salt", "easy"), Seed(tomorrow, "salt", "easy"))
	assert.NotEqual(t, Seed(morning, "salt", "easy"), Seed(morning, "salt", "hard"))
	assert.NotEqual(t, Seed(morning, "salt", "easy"), Seed(morning, "pepper", "easy"))
}
