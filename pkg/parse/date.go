package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Accepted year window for announcement dates. Anything outside is treated
// as noise (case numbers, phone numbers) rather than a publication date.
const (
	minYear = 2000
	maxYear = 2049
)

var (
	dmyPattern = regexp.MustCompile(`\b(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4})\b`)
	ymdPattern = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	// "12 stycznia 2024" style, genitive month names as used in running text
	wordPattern = regexp.MustCompile(`\b(\d{1,2})\s+(stycznia|lutego|marca|kwietnia|maja|czerwca|lipca|sierpnia|wrze[sś]nia|pa[zź]dziernika|listopada|grudnia)\s+(\d{4})\b`)
)

var monthNames = map[string]time.Month{
	"stycznia":     time.January,
	"lutego":       time.February,
	"marca":        time.March,
	"kwietnia":     time.April,
	"maja":         time.May,
	"czerwca":      time.June,
	"lipca":        time.July,
	"sierpnia":     time.August,
	"wrzesnia":     time.September,
	"września":     time.September,
	"pazdziernika": time.October,
	"października": time.October,
	"listopada":    time.November,
	"grudnia":      time.December,
}

// ExtractDate scans free text for the first plausible announcement date.
// It tries day-first numeric dates, then ISO dates, then spelled-out Polish
// month names. Returns the zero time and false when nothing validates.
func ExtractDate(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}

	if m := dmyPattern.FindStringSubmatch(text); m != nil {
		if t, ok := buildDate(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := ymdPattern.FindStringSubmatch(text); m != nil {
		if t, ok := buildDate(m[1], m[2], m[3]); ok {
			return t, true
		}
	}
	if m := wordPattern.FindStringSubmatch(strings.ToLower(text)); m != nil {
		month, ok := monthNames[m[2]]
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[3])
		day, _ := strconv.Atoi(m[1])
		if validDate(year, int(month), day) {
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

func buildDate(yearStr, monthStr, dayStr string) (time.Time, bool) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	if !validDate(year, month, day) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func validDate(year, month, day int) bool {
	if year < minYear || year > maxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}
