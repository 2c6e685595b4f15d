// Package export implements the connections export pipeline: log in, scroll
// the lazily-loaded connections list until it stops growing, extract every
// card, and parse a best-effort employer out of each headline.
package export

// Connection is one exported contact. Name is always non-empty after
// trimming; Employer is nil when the headline did not yield one.
type Connection struct {
	Name     string  `json:"name"`
	Headline string  `json:"headline"`
	Employer *string `json:"employer"`
}
