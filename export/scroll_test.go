package export

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScrollConfig() ScrollConfig {
	return ScrollConfig{Settle: time.Millisecond, StableRounds: 3, MaxRounds: 20}
}

func TestLoadAll_ConvergesAfterThreeStableReads(t *testing.T) {
	driver := &fakeDriver{heights: []int{100, 250, 250, 250, 250}}

	err := LoadAll(driver, testScrollConfig(), discardLogger())
	require.NoError(t, err)

	// Round 1 grows to 100, round 2 grows to 250, rounds 3-5 are the three
	// consecutive unchanged reads.
	assert.Equal(t, 5, driver.scrolls)
	assert.Len(t, driver.paused, 5)
}

func TestLoadAll_GrowthResetsStability(t *testing.T) {
	driver := &fakeDriver{heights: []int{100, 100, 100, 400, 400, 400, 400}}

	err := LoadAll(driver, testScrollConfig(), discardLogger())
	require.NoError(t, err)

	// The jump to 400 after three reads of 100 resets the counter, so three
	// fresh unchanged reads of 400 are needed.
	assert.Equal(t, 7, driver.scrolls)
}

func TestLoadAll_NeverStabilizesHitsCap(t *testing.T) {
	driver := &fakeDriver{growing: true}

	cfg := testScrollConfig()
	cfg.MaxRounds = 7
	err := LoadAll(driver, cfg, discardLogger())

	require.ErrorIs(t, err, ErrIncompleteLoad)
	assert.Equal(t, 7, driver.scrolls)
}

func TestLoadAll_PausesForSettleInterval(t *testing.T) {
	driver := &fakeDriver{heights: []int{250, 250, 250, 250}}

	cfg := testScrollConfig()
	cfg.Settle = 42 * time.Millisecond
	err := LoadAll(driver, cfg, discardLogger())
	require.NoError(t, err)

	for _, p := range driver.paused {
		assert.Equal(t, 42*time.Millisecond, p)
	}
}
