package humanize

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
)

// Keystroke pacing for credential entry: roughly 75 WPM with jitter, so the
// login form sees individual input events instead of a single paste.
const (
	keyDelayBaseMs   = 80
	keyDelayJitterMs = 40
)

// TypeInto types text into el one character at a time with human-like
// delays between keystrokes.
func TypeInto(el *rod.Element, text string) error {
	for _, ch := range text {
		if err := el.Input(string(ch)); err != nil {
			return fmt.Errorf("type character: %w", err)
		}
		time.Sleep(RandomMillis(keyDelayBaseMs-keyDelayJitterMs, keyDelayBaseMs+keyDelayJitterMs))
	}
	return nil
}
