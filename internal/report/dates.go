package report

import "time"

// DateLayout is the MM/DD/YYYY format used on the wire.
const DateLayout = "01/02/2006"

// Now is the reference clock for age and tenure figures.
var Now = time.Now

// ParseDate parses a wire date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate formats t for the wire; a nil date renders empty.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// YearsSince returns the number of full years between t and Now.
func YearsSince(t *time.Time) int {
	if t == nil {
		return 0
	}
	now := Now()
	years := now.Year() - t.Year()
	if now.Month() < t.Month() || (now.Month() == t.Month() && now.Day() < t.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Generation names the generational cohort of a birth date.
func Generation(birth *time.Time) string {
	if birth == nil {
		return "-"
	}
	switch y := birth.Year(); {
	case y <= 1964:
		return "Baby Boomers"
	case y <= 1980:
		return "Gen X"
	case y <= 1996:
		return "Millennials"
	case y <= 2012:
		return "Gen Z"
	default:
		return "Gen Alpha"
	}
}

// YearRange returns [Jan 1 of year, Jan 1 of year+1) in UTC.
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
