package export

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"linkedin-network-export/auth"
)

// Run stages, logged as the session advances. The sequence is linear; any
// failure is terminal for the run.
const (
	stageLoggingIn   = "logging_in"
	stageNavigating  = "navigating_to_list"
	stageListLoading = "list_loading"
	stageExtracting  = "extracting"
)

// Config tunes the bounded waits and the scroll convergence loop.
type Config struct {
	// LoginTimeout bounds the wait for the post-login redirect.
	LoginTimeout time.Duration
	// NavigationTimeout bounds the wait for the first connection card.
	NavigationTimeout time.Duration
	Scroll            ScrollConfig
}

// DefaultConfig mirrors the timeouts LinkedIn needs in practice.
func DefaultConfig() Config {
	return Config{
		LoginTimeout:      60 * time.Second,
		NavigationTimeout: 60 * time.Second,
		Scroll:            DefaultScrollConfig(),
	}
}

// Exporter runs one login → scroll → extract pass over the connections
// page. It never retries; a timeout at any wait point fails the run.
type Exporter struct {
	driver PageDriver
	cfg    Config
	logger *slog.Logger
}

// NewExporter builds an exporter over driver. logger may be nil.
func NewExporter(driver PageDriver, cfg Config, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{driver: driver, cfg: cfg, logger: logger}
}

// Run executes the full pipeline and returns the extracted connections.
// On failure the returned error carries a FailureKind and no connections
// are returned, so callers never persist a partial result.
func (e *Exporter) Run(creds auth.Credentials) ([]Connection, error) {
	active, err := e.sessionActive()
	if err != nil {
		return nil, NewError(FailureUnexpected, err)
	}
	if active {
		e.logger.Info("existing session still valid, skipping login")
	} else if err := e.login(creds); err != nil {
		return nil, err
	}

	e.logger.Info("navigating to connections page", "stage", stageNavigating)
	if err := e.driver.Navigate(ConnectionsURL); err != nil {
		return nil, NewError(FailureUnexpected, err)
	}
	if err := e.driver.WaitVisible(SelectorCard, e.cfg.NavigationTimeout); err != nil {
		if errors.Is(err, ErrWaitTimeout) {
			return nil, NewError(FailureNavigationTimeout, err)
		}
		return nil, NewError(FailureUnexpected, err)
	}

	e.logger.Info("scrolling connections list to load all entries", "stage", stageListLoading)
	if err := LoadAll(e.driver, e.cfg.Scroll, e.logger); err != nil {
		if errors.Is(err, ErrIncompleteLoad) {
			return nil, NewError(FailureIncompleteLoad, err)
		}
		return nil, NewError(FailureUnexpected, err)
	}

	e.logger.Info("extracting connection cards", "stage", stageExtracting)
	html, err := e.driver.HTML()
	if err != nil {
		return nil, NewError(FailureUnexpected, err)
	}
	connections, err := ExtractConnections(html)
	if err != nil {
		return nil, NewError(FailureUnexpected, err)
	}

	e.logger.Info("extraction complete", "connections", len(connections))
	return connections, nil
}

// sessionActive reports whether restored cookies still carry a logged-in
// session: the feed loads without bouncing to the login form.
func (e *Exporter) sessionActive() (bool, error) {
	if err := e.driver.Navigate(FeedURL); err != nil {
		return false, fmt.Errorf("probe session: %w", err)
	}
	url, err := e.driver.CurrentURL()
	if err != nil {
		return false, err
	}
	return !strings.Contains(url, "/login"), nil
}

func (e *Exporter) login(creds auth.Credentials) error {
	e.logger.Info("navigating to login page", "stage", stageLoggingIn)
	if err := e.driver.Navigate(LoginURL); err != nil {
		return NewError(FailureUnexpected, err)
	}
	if err := e.driver.Fill(SelectorUsername, creds.Email); err != nil {
		return NewError(FailureUnexpected, err)
	}
	if err := e.driver.Fill(SelectorPassword, creds.Password); err != nil {
		return NewError(FailureUnexpected, err)
	}

	e.logger.Info("submitting login form")
	if err := e.driver.Click(SelectorLoginSubmit); err != nil {
		return NewError(FailureUnexpected, err)
	}
	if err := e.driver.WaitURL(LoggedInURLPattern, e.cfg.LoginTimeout); err != nil {
		if errors.Is(err, ErrWaitTimeout) {
			return NewError(FailureLoginTimeout, err)
		}
		return NewError(FailureUnexpected, err)
	}

	e.logger.Info("login flow completed")
	return nil
}
