// Package derive turns the raw text of a catalog page into the classified
// fields of a satellite record. Every function is total: input it cannot make
// sense of produces a sentinel value instead of an error.
package derive

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayout accepts one- or two-digit day and month.
const dateLayout = "2.1.2006"

var firstNumber = regexp.MustCompile(`\d+`)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// parseDate parses a D.M.YYYY catalog date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// parseYear parses a bare integer year.
func parseYear(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}

// maxYear is the last year a four-digit catalog date can hold.
const maxYear = 9999

// shiftYear adds years to year. It fails when the result leaves the
// four-digit range, which also rules out integer overflow.
func shiftYear(year, years int) (int, error) {
	if years > maxYear-year {
		return 0, fmt.Errorf("year %d plus %d years is past %d", year, years, maxYear)
	}
	return year + years, nil
}

// addYears moves t forward by years, keeping day and month. It fails when
// the day does not exist in the target year (29 February) or the year
// leaves the four-digit range.
func addYears(t time.Time, years int) (time.Time, error) {
	target, err := shiftYear(t.Year(), years)
	if err != nil {
		return time.Time{}, err
	}
	out := time.Date(target, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if out.Day() != t.Day() {
		return time.Time{}, fmt.Errorf("day %d.%02d does not exist in %d", t.Day(), int(t.Month()), target)
	}
	return out, nil
}
