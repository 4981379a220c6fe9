// Package search applies the dashboard's live-search semantics: a
// case-insensitive substring match over designated text fields combined
// with a categorical filter. Both functions are pure and preserve the
// order of the input sequence, so they are safe to run on every request.
package search

import (
	"strings"

	"github.com/globopersona/marketing-dashboard/internal/models"
)

// All is the categorical filter sentinel matching every record.
const All = "all"

// Campaigns filters by name substring and status.
func Campaigns(campaigns []models.Campaign, term, status string) []models.Campaign {
	term = strings.ToLower(term)
	status = strings.ToLower(status)

	filtered := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !matchesCategory(status, string(c.Status)) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(c.Name), term) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Contacts filters by name-or-email substring and segment.
func Contacts(contacts []models.Contact, term, segment string) []models.Contact {
	term = strings.ToLower(term)
	segment = strings.ToLower(segment)

	filtered := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if !matchesCategory(segment, string(c.Segment)) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func matchesCategory(filter, value string) bool {
	return filter == "" || filter == All || filter == strings.ToLower(value)
}
