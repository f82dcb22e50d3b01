package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	before := time.Now()
	now := p.Now()
	assert.False(t, now.Before(before))

	past := now.Add(-time.Hour)
	assert.GreaterOrEqual(t, p.Since(past), time.Hour)
}
