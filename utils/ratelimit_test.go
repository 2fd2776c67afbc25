package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilLimiterAllowsEverything(t *testing.T) {
	var l *MapLimiter
	assert.True(t, l.Allow("x", time.Now()))
	assert.Nil(t, NewMapLimiter(0, 5, 0))
	assert.Nil(t, NewMapLimiter(1, 0, 0))
}

func TestMapLimiterPerSender(t *testing.T) {
	l := NewMapLimiter(1, 2, time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, l.Allow("a", now))
	assert.True(t, l.Allow("a", now))
	assert.False(t, l.Allow("a", now))
	assert.True(t, l.Allow("b", now))

	assert.True(t, l.Allow("a", now.Add(time.Second)))
	assert.True(t, l.Allow("  ", now))
}

func TestMapLimiterEvictsIdleSenders(t *testing.T) {
	l := NewMapLimiter(10, 10, time.Minute)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	l.Allow("idle", start)
	later := start.Add(time.Hour)
	for i := 0; i < 511; i++ {
		l.Allow(fmt.Sprintf("busy-%d", i%4), later)
	}

	assert.Equal(t, 4, l.tracked())
}
