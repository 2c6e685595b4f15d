package export

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"linkedin-network-export/humanize"
)

// urlPollInterval is how often WaitURL re-reads the page location.
const urlPollInterval = 500 * time.Millisecond

// RodDriver adapts a rod page to the PageDriver capability.
type RodDriver struct {
	page *rod.Page
}

// NewRodDriver wraps page. The caller keeps ownership of the page and the
// browser it belongs to.
func NewRodDriver(page *rod.Page) *RodDriver {
	return &RodDriver{page: page}
}

func (d *RodDriver) Navigate(url string) error {
	if err := d.page.Navigate(url); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	if err := d.page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load %s: %w", url, err)
	}
	return nil
}

func (d *RodDriver) CurrentURL() (string, error) {
	info, err := d.page.Info()
	if err != nil {
		return "", fmt.Errorf("read page info: %w", err)
	}
	return info.URL, nil
}

// Fill types text into selector one keystroke at a time so the login form
// does not see a single instantaneous paste.
func (d *RodDriver) Fill(selector, text string) error {
	el, err := d.page.Element(selector)
	if err != nil {
		return fmt.Errorf("element not found: %s: %w", selector, err)
	}
	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("wait visible %s: %w", selector, err)
	}
	if err := el.Focus(); err != nil {
		return fmt.Errorf("focus %s: %w", selector, err)
	}
	humanize.SleepMillis(200, 400)
	return humanize.TypeInto(el, text)
}

func (d *RodDriver) Click(selector string) error {
	el, err := d.page.Element(selector)
	if err != nil {
		return fmt.Errorf("element not found: %s: %w", selector, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

func (d *RodDriver) WaitURL(pattern *regexp.Regexp, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		url, err := d.CurrentURL()
		if err != nil {
			return err
		}
		if pattern.MatchString(url) {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: url %q never matched %s within %s",
				ErrWaitTimeout, url, pattern, timeout)
		}
		time.Sleep(urlPollInterval)
	}
}

func (d *RodDriver) WaitVisible(selector string, timeout time.Duration) error {
	page := d.page.Timeout(timeout)
	defer page.CancelTimeout()

	el, err := page.Element(selector)
	if err != nil {
		return waitErr(err, selector, timeout)
	}
	if err := el.WaitVisible(); err != nil {
		return waitErr(err, selector, timeout)
	}
	return nil
}

func waitErr(err error, selector string, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s not visible within %s", ErrWaitTimeout, selector, timeout)
	}
	return fmt.Errorf("wait visible %s: %w", selector, err)
}

func (d *RodDriver) ScrollToBottom() error {
	_, err := d.page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	if err != nil {
		return fmt.Errorf("scroll to bottom: %w", err)
	}
	return nil
}

func (d *RodDriver) ScrollHeight() (int, error) {
	obj, err := d.page.Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, fmt.Errorf("read scroll height: %w", err)
	}
	return obj.Value.Int(), nil
}

func (d *RodDriver) HTML() (string, error) {
	return d.page.HTML()
}

func (d *RodDriver) Pause(dur time.Duration) {
	time.Sleep(dur)
}
