package derive

import (
	"strconv"
	"strings"

	"github.com/dtnitsch/geosat-report/models"
)

// EndOfLife computes the end-of-life date from the launch date and the
// lifetime text. The first integer in lifetime is taken as a count of years.
//
// A D.M.YYYY launch date yields a DD.MM.YYYY result; a bare year yields a
// bare year. A cancelled launch yields "cancelled" and anything unparseable
// yields "Lifetime data not found".
func EndOfLife(launchDate, lifetime string) string {
	if containsFold(launchDate, models.Cancelled) {
		return models.Cancelled
	}

	match := firstNumber.FindString(lifetime)
	if match == "" {
		return models.LifetimeNotFound
	}
	years, err := strconv.Atoi(match)
	if err != nil {
		return models.LifetimeNotFound
	}

	if strings.Contains(launchDate, ".") {
		launch, err := parseDate(launchDate)
		if err != nil {
			return models.LifetimeNotFound
		}
		end, err := addYears(launch, years)
		if err != nil {
			return models.LifetimeNotFound
		}
		return formatDate(end)
	}

	year, err := parseYear(launchDate)
	if err != nil {
		return models.LifetimeNotFound
	}
	end, err := shiftYear(year, years)
	if err != nil {
		return models.LifetimeNotFound
	}
	return strconv.Itoa(end)
}
