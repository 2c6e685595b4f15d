package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultCookiePath is where session cookies are stored between runs.
const DefaultCookiePath = "cookies.json"

// SaveCookies writes the browser's cookies to path so the next run can skip
// the login form.
func SaveCookies(browser *rod.Browser, path string) error {
	cookies, err := browser.GetCookies()
	if err != nil {
		return fmt.Errorf("read cookies: %w", err)
	}
	data, err := json.MarshalIndent(cookies, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cookies: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write cookie file %s: %w", path, err)
	}
	return nil
}

// LoadCookies restores previously saved cookies into the browser. A missing
// file is not an error; callers fall back to a fresh login. Returns true
// when cookies were restored.
func LoadCookies(browser *rod.Browser, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cookie file %s: %w", path, err)
	}

	var cookies []*proto.NetworkCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return false, fmt.Errorf("parse cookie file %s: %w", path, err)
	}

	params := make([]*proto.NetworkCookieParam, 0, len(cookies))
	for _, c := range cookies {
		params = append(params, &proto.NetworkCookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
			SameSite: c.SameSite,
		})
	}
	if err := browser.SetCookies(params); err != nil {
		return false, fmt.Errorf("restore cookies: %w", err)
	}
	return true, nil
}
