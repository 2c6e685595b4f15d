package humanize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomMillis_StaysInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := RandomMillis(40, 120)
		assert.GreaterOrEqual(t, d, 40*time.Millisecond)
		assert.LessOrEqual(t, d, 120*time.Millisecond)
	}
}

func TestRandomMillis_DegenerateRange(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, RandomMillis(50, 50))
	assert.Equal(t, 80*time.Millisecond, RandomMillis(80, 20))
}

func TestRandomSeconds_StaysInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := RandomSeconds(1, 3)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 3*time.Second)
	}
}
