package derive

import (
	"time"

	"github.com/dtnitsch/geosat-report/models"
)

// MissionStatus classifies a satellite. Rules are checked in priority order
// and the first one that holds decides:
//
//  1. launch date or end of life mentions "cancelled"  -> Cancelled
//  2. background mentions "mission complete" or "failure" -> Mission complete
//  3. launch date (or launch year) is after now         -> Planned
//  4. end of life is a date after now                   -> Operational
//  5. background mentions "extended"                    -> Extended Mission
//  6. otherwise                                         -> Operational
//
// A date that fails to parse is no evidence for its rule.
func MissionStatus(launchDate, endOfLife, background string, now time.Time) models.Status {
	if containsFold(launchDate, models.Cancelled) || containsFold(endOfLife, models.Cancelled) {
		return models.StatusCancelled
	}
	if containsFold(background, "mission complete") || containsFold(background, "failure") {
		return models.StatusMissionComplete
	}
	if launchedAfter(launchDate, now) {
		return models.StatusPlanned
	}
	if end, err := parseDate(endOfLife); err == nil && now.Before(end) {
		return models.StatusOperational
	}
	if containsFold(background, "extended") {
		return models.StatusExtended
	}
	return models.StatusOperational
}

// launchedAfter reports whether the launch lies in the future. A full date
// is tried first; only when that fails is the value read as a bare year.
func launchedAfter(launchDate string, now time.Time) bool {
	if launch, err := parseDate(launchDate); err == nil {
		return now.Before(launch)
	}
	year, err := parseYear(launchDate)
	if err != nil {
		return false
	}
	return year > now.Year()
}
