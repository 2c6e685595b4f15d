// Package humanize paces browser interactions so automated input does not
// land at machine speed.
package humanize

import (
	"math/rand"
	"time"
)

// RandomMillis returns a random duration between min and max milliseconds.
func RandomMillis(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Millisecond
	}
	n := rand.Intn(max-min+1) + min
	return time.Duration(n) * time.Millisecond
}

// RandomSeconds returns a random duration between min and max seconds.
func RandomSeconds(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Second
	}
	n := rand.Intn(max-min+1) + min
	return time.Duration(n) * time.Second
}

// SleepMillis sleeps for a random duration between min and max milliseconds.
func SleepMillis(min, max int) {
	time.Sleep(RandomMillis(min, max))
}

// Sleep sleeps for a random duration between min and max seconds.
func Sleep(min, max int) {
	time.Sleep(RandomSeconds(min, max))
}
