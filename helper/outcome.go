package helper

import (
	"regexp"
	"strings"

	"github.com/adil-bs/Universal-ticket-mock-APIs/constants"
)

// OutcomeRegret marks a seat status that rejects booking outright. It is an
// outcome only, never a stored booking status.
const OutcomeRegret = "regret"

var availableCountRe = regexp.MustCompile(`(\d+)\s*available`)

type statusRule struct {
	outcome string
	match   func(text string) bool
}

// statusRules is ordered: negative vocabulary is checked before waitlist
// vocabulary before confirming vocabulary, so "Not Available" never reads as
// available and "Regret/WL" reads as regret.
var statusRules = []statusRule{
	{OutcomeRegret, containsAny("regret", "not available")},
	{constants.BOOKING_WAITLIST, containsAny("waitlist", "wl", "rac")},
	{constants.BOOKING_CONFIRMED, confirmsAvailability},
}

// ClassifyStatus maps scraped seat status text to a booking outcome.
// Unrecognized or empty text falls back to waitlist: an ambiguous status
// must never silently confirm.
func ClassifyStatus(statusText string) string {
	text := strings.ToLower(strings.TrimSpace(statusText))
	if text == "" {
		return constants.BOOKING_WAITLIST
	}
	for _, rule := range statusRules {
		if rule.match(text) {
			return rule.outcome
		}
	}
	return constants.BOOKING_WAITLIST
}

func containsAny(terms ...string) func(string) bool {
	return func(text string) bool {
		for _, term := range terms {
			if strings.Contains(text, term) {
				return true
			}
		}
		return false
	}
}

// confirmsAvailability accepts "Available" with either no seat count or a
// positive one. "0 Available" falls through to the waitlist fallback.
func confirmsAvailability(text string) bool {
	if !strings.Contains(text, "available") {
		return false
	}
	if m := availableCountRe.FindStringSubmatch(text); m != nil {
		return strings.TrimLeft(m[1], "0") != ""
	}
	return true
}
