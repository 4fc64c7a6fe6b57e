package experience

import (
	"math"
	"testing"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func resumeWithDates(dates ...string) *types.CandidateResume {
	entries := make([]types.ExperienceEntry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, types.ExperienceEntry{Title: "Engineer", Company: "Acme", Dates: d})
	}
	return &types.CandidateResume{Name: "Test", Experience: entries}
}

func TestTotalYears_MonthGranularRange(t *testing.T) {
	// Jan 2020 -> Mar 2022 is 26 whole months.
	years, ok := TotalYears(resumeWithDates("Jan 2020 - Mar 2022"))

	assert.True(t, ok)
	assert.Equal(t, 2.2, years)
}

func TestTotalYears_FullMonthNamesAndToSeparator(t *testing.T) {
	// March 2019 -> June 2020 is 15 months.
	years, ok := TotalYears(resumeWithDates("March 2019 to June 2020"))

	assert.True(t, ok)
	assert.Equal(t, 1.3, years)
}

func TestTotalYears_EnDashAndEmDash(t *testing.T) {
	years, ok := TotalYears(resumeWithDates("Jan 2020 – Jan 2021"))
	assert.True(t, ok)
	assert.Equal(t, 1.0, years)

	years, ok = TotalYears(resumeWithDates("Jan 2020 — Jul 2021"))
	assert.True(t, ok)
	assert.Equal(t, 1.5, years)
}

func TestTotalYears_BareYearsDefaultToJanuary(t *testing.T) {
	years, ok := TotalYears(resumeWithDates("2018 - 2020"))

	assert.True(t, ok)
	assert.Equal(t, 2.0, years)
}

func TestTotalYears_PresentResolvesToNow(t *testing.T) {
	years, ok := TotalYears(resumeWithDates("2020 - Present"))

	now := time.Now()
	expectedMonths := (now.Year()-2020)*12 + int(now.Month()) - int(time.January)
	expected := math.Round(float64(expectedMonths)/12*10) / 10

	assert.True(t, ok)
	assert.Equal(t, expected, years)
}

func TestTotalYears_PresentSynonyms(t *testing.T) {
	for _, token := range []string{"Current", "now", "Ongoing", "today"} {
		_, ok := TotalYears(resumeWithDates("Jan 2022 - " + token))
		assert.True(t, ok, "token %q should parse", token)
	}
}

func TestTotalYears_UnparsableEntryContributesZero(t *testing.T) {
	years, ok := TotalYears(resumeWithDates("Jan 2020 - Jan 2021", "Summer internship"))

	assert.True(t, ok)
	assert.Equal(t, 1.0, years)
}

func TestTotalYears_AllEntriesUnparsable(t *testing.T) {
	_, ok := TotalYears(resumeWithDates("Summer internship", "a while ago"))
	assert.False(t, ok)
}

func TestTotalYears_NoExperienceEntries(t *testing.T) {
	_, ok := TotalYears(&types.CandidateResume{Name: "Empty"})
	assert.False(t, ok)
}

func TestTotalYears_NegativeRangeCountsAsZero(t *testing.T) {
	// Reversed range parses but contributes zero months.
	years, ok := TotalYears(resumeWithDates("Jan 2022 - Jan 2020"))

	assert.True(t, ok)
	assert.Equal(t, 0.0, years)
}

func TestTotalYears_SumsAcrossEntries(t *testing.T) {
	// 12 + 6 months = 18 months = 1.5 years.
	years, ok := TotalYears(resumeWithDates("Jan 2018 - Jan 2019", "Feb 2019 - Aug 2019"))

	assert.True(t, ok)
	assert.Equal(t, 1.5, years)
}

func TestSplitDateRange_NoSeparator(t *testing.T) {
	_, _, ok := splitDateRange("Summer 2020")
	assert.False(t, ok)
}

func TestSplitDateRange_ToInsideMonthNameIsNotASeparator(t *testing.T) {
	// "October" contains "to" but not on a word boundary.
	left, right, ok := splitDateRange("October 2019 - Dec 2020")

	assert.True(t, ok)
	assert.Equal(t, "October 2019 ", left)
	assert.Equal(t, " Dec 2020", right)
}

func TestParseMonthYear_AbbreviatedAndPunctuated(t *testing.T) {
	now := time.Now()

	parsed, ok := parseMonthYear("Sept. 2021", now)
	assert.True(t, ok)
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 2021, parsed.Year())
}
