// Package experience estimates total years of work experience from the
// heterogeneous free-text date ranges found in resume experience entries.
package experience

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// monthYearRe matches "Jan 2020", "January 2020", "Sept. 2021", etc.
	monthYearRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{4})\b`)
	// bareYearRe matches a stand-alone 4-digit year.
	bareYearRe = regexp.MustCompile(`\b(\d{4})\b`)
	// presentRe matches tokens meaning "still employed here".
	presentRe = regexp.MustCompile(`(?i)\b(present|current|now|ongoing|today)\b`)
	// toSepRe matches the word "to" used as a range separator.
	toSepRe = regexp.MustCompile(`(?i)\bto\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// TotalYears estimates the candidate's total years of experience by parsing
// the date range of every experience entry. Unparsable entries contribute
// zero months and are not errors. The second return is false only when no
// entry at all could be parsed; a resume whose entries all parse to zero or
// negative spans yields (0.0, true).
func TotalYears(resume *types.CandidateResume) (float64, bool) {
	now := time.Now()

	totalMonths := 0
	parsedAny := false
	for _, entry := range resume.Experience {
		start, end, ok := parseDateRange(entry.Dates, now)
		if !ok {
			continue
		}
		parsedAny = true
		if m := monthsBetween(start, end); m > 0 {
			totalMonths += m
		}
	}

	if !parsedAny {
		return 0, false
	}
	return math.Round(float64(totalMonths)/12*10) / 10, true
}

// parseDateRange splits a free-text date range and parses both sides.
func parseDateRange(dates string, now time.Time) (start, end time.Time, ok bool) {
	left, right, ok := splitDateRange(dates)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	start, ok = parseMonthYear(left, now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = parseMonthYear(right, now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// splitDateRange splits on the first occurrence of an en-dash, em-dash,
// spaced hyphen, or the word "to".
func splitDateRange(dates string) (left, right string, ok bool) {
	bestIdx := -1
	sepLen := 0

	for _, sep := range []string{"–", "—", " - "} {
		if idx := strings.Index(dates, sep); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			bestIdx = idx
			sepLen = len(sep)
		}
	}
	if loc := toSepRe.FindStringIndex(dates); loc != nil && (bestIdx < 0 || loc[0] < bestIdx) {
		bestIdx = loc[0]
		sepLen = loc[1] - loc[0]
	}

	if bestIdx < 0 {
		return "", "", false
	}
	return dates[:bestIdx], dates[bestIdx+sepLen:], true
}

// parseMonthYear parses one side of a date range. Recognized forms, in
// order: a "still here" token resolved to now, a month name followed by a
// 4-digit year, and a bare 4-digit year (defaulting to January).
func parseMonthYear(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if presentRe.MatchString(text) {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true
	}

	if m := monthYearRe.FindStringSubmatch(text); m != nil {
		month := monthsByPrefix[strings.ToLower(m[1])]
		year, err := strconv.Atoi(m[2])
		if err == nil {
			return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	if m := bareYearRe.FindStringSubmatch(text); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// monthsBetween returns the whole-month difference between two dates.
func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
