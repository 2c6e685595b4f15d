package export

import (
	"regexp"
	"time"
)

// fakeDriver is a scripted PageDriver so the pipeline runs without a
// browser.
type fakeDriver struct {
	// heights is the scripted extent sequence; once exhausted the last
	// value repeats. growing overrides it with an extent that never
	// stabilizes.
	heights   []int
	heightIdx int
	growing   bool

	// redirects maps a navigated URL to the URL the page "lands" on.
	redirects map[string]string

	html string

	url       string
	navigated []string
	filled    map[string]string
	clicked   []string
	scrolls   int
	paused    []time.Duration

	waitURLErr     error
	waitVisibleErr error
}

func (d *fakeDriver) Navigate(url string) error {
	d.navigated = append(d.navigated, url)
	if target, ok := d.redirects[url]; ok {
		d.url = target
	} else {
		d.url = url
	}
	return nil
}

func (d *fakeDriver) CurrentURL() (string, error) {
	return d.url, nil
}

func (d *fakeDriver) Fill(selector, text string) error {
	if d.filled == nil {
		d.filled = map[string]string{}
	}
	d.filled[selector] = text
	return nil
}

func (d *fakeDriver) Click(selector string) error {
	d.clicked = append(d.clicked, selector)
	return nil
}

func (d *fakeDriver) WaitURL(pattern *regexp.Regexp, timeout time.Duration) error {
	if d.waitURLErr != nil {
		return d.waitURLErr
	}
	d.url = "https://www.linkedin.com/feed/"
	return nil
}

func (d *fakeDriver) WaitVisible(selector string, timeout time.Duration) error {
	return d.waitVisibleErr
}

func (d *fakeDriver) ScrollToBottom() error {
	d.scrolls++
	return nil
}

func (d *fakeDriver) ScrollHeight() (int, error) {
	if d.growing {
		d.heightIdx++
		return d.heightIdx * 100, nil
	}
	if len(d.heights) == 0 {
		return 0, nil
	}
	if d.heightIdx < len(d.heights) {
		h := d.heights[d.heightIdx]
		d.heightIdx++
		return h, nil
	}
	return d.heights[len(d.heights)-1], nil
}

func (d *fakeDriver) HTML() (string, error) {
	return d.html, nil
}

func (d *fakeDriver) Pause(dur time.Duration) {
	d.paused = append(d.paused, dur)
}
