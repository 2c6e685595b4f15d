package export

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractConnections walks every connection card in a DOM snapshot, in
// document order, and returns one Connection per card with a non-empty name.
// A card missing its name or occupation sub-node contributes empty strings;
// nameless cards are skipped, not errors. The walk is read-only, so running
// it twice over the same snapshot yields identical results.
func ExtractConnections(html string) ([]Connection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	var connections []Connection
	doc.Find(SelectorCard).Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find(SelectorCardName).First().Text())
		headline := strings.TrimSpace(card.Find(SelectorCardOccupation).First().Text())
		if name == "" {
			return
		}

		conn := Connection{Name: name, Headline: headline}
		if employer, ok := ParseEmployer(headline); ok {
			conn.Employer = &employer
		}
		connections = append(connections, conn)
	})

	return connections, nil
}
