package export

import (
	"regexp"
	"time"
)

// PageDriver is the browser capability the exporter needs. The production
// implementation wraps a rod page; tests substitute a scripted fake so the
// whole pipeline runs without a browser.
type PageDriver interface {
	// Navigate loads url and returns once the initial document load finished.
	Navigate(url string) error
	// CurrentURL reports the page's current location.
	CurrentURL() (string, error)
	// Fill types text into the element at selector.
	Fill(selector, text string) error
	// Click clicks the element at selector.
	Click(selector string) error
	// WaitURL blocks until the page URL matches pattern. On expiry the
	// returned error wraps ErrWaitTimeout.
	WaitURL(pattern *regexp.Regexp, timeout time.Duration) error
	// WaitVisible blocks until selector is visible. On expiry the returned
	// error wraps ErrWaitTimeout.
	WaitVisible(selector string, timeout time.Duration) error
	// ScrollToBottom triggers a scroll to the bottom of the document.
	ScrollToBottom() error
	// ScrollHeight reads the document's current scroll extent.
	ScrollHeight() (int, error)
	// HTML returns a snapshot of the current DOM.
	HTML() (string, error)
	// Pause blocks for d.
	Pause(d time.Duration)
}
