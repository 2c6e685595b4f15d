package export

import "regexp"

// LinkedIn URLs and DOM selectors, isolated here because LinkedIn changes
// its markup often. Inspect the connections page in DevTools to
// verify/update when extraction starts coming back empty.
const (
	LoginURL       = "https://www.linkedin.com/login"
	FeedURL        = "https://www.linkedin.com/feed/"
	ConnectionsURL = "https://www.linkedin.com/mynetwork/invite-connect/connections/"

	// Login form.
	SelectorUsername    = `input#username`
	SelectorPassword    = `input#password`
	SelectorLoginSubmit = `button[type="submit"]`

	// One connection card in the rendered list, and its sub-nodes.
	SelectorCard           = `.mn-connection-card`
	SelectorCardName       = `.mn-connection-card__name`
	SelectorCardOccupation = `.mn-connection-card__occupation`
)

// LoggedInURLPattern matches the destinations LinkedIn lands on after a
// successful credential submit: the feed, a security checkpoint, or the
// network page.
var LoggedInURLPattern = regexp.MustCompile(`linkedin\.com/(feed|checkpoint|mynetwork)`)
