package export

import (
	"regexp"
	"strings"
)

// Matches " at " or " @ " with whitespace on both sides, case-insensitively.
var employerSplitRe = regexp.MustCompile(`(?i)\s+at\s+|\s+@\s+`)

// ParseEmployer pulls the current employer out of a free-text headline like
// "Engineer at Acme". Only the first separator is honored, so a multi-clause
// headline keeps its trailing clauses in the result. Returns false when the
// headline is empty, has no separator, or the remainder trims to nothing.
func ParseEmployer(headline string) (string, bool) {
	if headline == "" {
		return "", false
	}
	parts := employerSplitRe.Split(headline, 2)
	if len(parts) != 2 {
		return "", false
	}
	employer := strings.TrimSpace(parts[1])
	if employer == "" {
		return "", false
	}
	return employer, true
}
