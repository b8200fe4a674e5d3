package scraper

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// Field parsers normalize raw scraped fragments. Each one falls back to a
// well-defined value on unrecognized input and logs a warning instead of
// failing, so one odd fragment never aborts an extraction pass.

var (
	durationRe = regexp.MustCompile(`(?i)(\d+)\s*h(?:rs?)?(?:\s*(\d+)\s*m(?:ins?)?)?`)
	distanceRe = regexp.MustCompile(`(?i)([\d,]+)\s*km`)
	numberRe   = regexp.MustCompile(`\d+`)
	clockRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	priceRe    = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
)

// ParseDuration normalizes "06 h 50 m" or "15h 40m" to "%02dh %02dm".
// Unrecognized input comes back unchanged.
func ParseDuration(raw string) string {
	m := durationRe.FindStringSubmatch(raw)
	if m == nil {
		log.Printf("[SCRAPER] unparseable duration %q", raw)
		return raw
	}
	hours, _ := strconv.Atoi(m[1])
	mins := 0
	if m[2] != "" {
		mins, _ = strconv.Atoi(m[2])
	}
	return fmt.Sprintf("%02dh %02dm", hours, mins)
}

// ParseDistance normalizes "357 kms" or "1,384 km" to "<n> km".
// Unrecognized input comes back unchanged.
func ParseDistance(raw string) string {
	m := distanceRe.FindStringSubmatch(raw)
	if m == nil {
		log.Printf("[SCRAPER] unparseable distance %q", raw)
		return raw
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		log.Printf("[SCRAPER] unparseable distance %q", raw)
		return raw
	}
	return fmt.Sprintf("%d km", n)
}

// ParseHalts pulls the halt count out of "4 halts". Unrecognized input
// counts as zero halts.
func ParseHalts(raw string) int {
	m := numberRe.FindString(raw)
	if m == "" {
		log.Printf("[SCRAPER] unparseable halts %q", raw)
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// ParseClock normalizes "7:25" to 24-hour "07:25". Unrecognized input comes
// back unchanged.
func ParseClock(raw string) string {
	m := clockRe.FindStringSubmatch(raw)
	if m == nil {
		log.Printf("[SCRAPER] unparseable clock %q", raw)
		return raw
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// ParsePrice strips currency markers from "₹1,234" and returns the amount.
// Unrecognized input, including the site's "N/A" placeholder, is zero.
func ParsePrice(raw string) float64 {
	m := priceRe.FindString(raw)
	if m == "" {
		log.Printf("[SCRAPER] unparseable price %q", raw)
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		log.Printf("[SCRAPER] unparseable price %q", raw)
		return 0
	}
	return v
}
