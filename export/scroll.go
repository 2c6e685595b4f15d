package export

import (
	"fmt"
	"log/slog"
	"time"
)

// ScrollConfig controls the convergence loop that forces the virtualized
// connections list to finish lazy-loading.
type ScrollConfig struct {
	// Settle is the fixed pause after each scroll trigger, giving async
	// content time to render before the extent is re-measured.
	Settle time.Duration
	// StableRounds is how many consecutive unchanged extent readings count
	// as convergence. A single unchanged reading is unreliable against
	// network jitter and staggered batch rendering.
	StableRounds int
	// MaxRounds caps the loop; exceeding it returns ErrIncompleteLoad.
	// Zero means no cap.
	MaxRounds int
}

// DefaultScrollConfig returns the scroll tuning used in production.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		Settle:       1500 * time.Millisecond,
		StableRounds: 3,
		MaxRounds:    60,
	}
}

// LoadAll scrolls the driver's page to the bottom until the scroll extent
// stops growing for cfg.StableRounds consecutive reads. With a MaxRounds cap
// set, a list that never stabilizes fails with ErrIncompleteLoad instead of
// hanging the run.
func LoadAll(driver PageDriver, cfg ScrollConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	lastHeight := 0
	stable := 0
	for round := 1; ; round++ {
		if cfg.MaxRounds > 0 && round > cfg.MaxRounds {
			return fmt.Errorf("%w after %d rounds (height %d)",
				ErrIncompleteLoad, cfg.MaxRounds, lastHeight)
		}
		if err := driver.ScrollToBottom(); err != nil {
			return fmt.Errorf("scroll trigger: %w", err)
		}
		driver.Pause(cfg.Settle)

		height, err := driver.ScrollHeight()
		if err != nil {
			return err
		}
		if height == lastHeight {
			stable++
		} else {
			stable = 0
			lastHeight = height
		}
		logger.Debug("scroll round", "round", round, "height", height, "stable", stable)

		if stable >= cfg.StableRounds {
			return nil
		}
	}
}
