package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, ParseDuration("24h", time.Hour))
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestToday(t *testing.T) {
	got := Today()
	parsed, err := time.Parse("2006-01-02", got)
	assert.NoError(t, err)
	assert.Equal(t, got, parsed.Format("2006-01-02"))
}
