package derive

import (
	"testing"
	"time"

	"github.com/dtnitsch/geosat-report/models"
)

func TestMissionStatus(t *testing.T) {
	now := time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		launchDate string
		endOfLife  string
		background string
		want       models.Status
	}{
		{
			name:       "cancelled launch beats mission complete",
			launchDate: "cancelled",
			endOfLife:  models.Cancelled,
			background: "The mission complete notice was issued.",
			want:       models.StatusCancelled,
		},
		{
			name:       "cancelled end of life only",
			launchDate: "01.01.2030",
			endOfLife:  "CANCELLED",
			want:       models.StatusCancelled,
		},
		{
			name:       "mission complete",
			launchDate: "01.01.2000",
			endOfLife:  "01.01.2030",
			background: "Mission Complete in 2019.",
			want:       models.StatusMissionComplete,
		},
		{
			name:       "failure beats planned",
			launchDate: "01.01.2030",
			endOfLife:  "01.01.2045",
			background: "Launch failure of the previous unit.",
			want:       models.StatusMissionComplete,
		},
		{
			name:       "future launch date",
			launchDate: "02.06.2020",
			endOfLife:  "02.06.2035",
			want:       models.StatusPlanned,
		},
		{
			name:       "future launch year",
			launchDate: "2021",
			endOfLife:  "2036",
			want:       models.StatusPlanned,
		},
		{
			name:       "current launch year is not planned",
			launchDate: "2020",
			endOfLife:  "2035",
			background: "extended operations",
			want:       models.StatusExtended,
		},
		{
			name:       "future end of life",
			launchDate: "01.01.2010",
			endOfLife:  "01.01.2025",
			background: "extended operations",
			want:       models.StatusOperational,
		},
		{
			name:       "past end of life with extension",
			launchDate: "01.01.2000",
			endOfLife:  "01.01.2015",
			background: "Mission was Extended twice.",
			want:       models.StatusExtended,
		},
		{
			name:       "past end of life defaults to operational",
			launchDate: "01.01.2000",
			endOfLife:  "01.01.2015",
			want:       models.StatusOperational,
		},
		{
			name:       "unparseable dates fall through",
			launchDate: "TBD",
			endOfLife:  models.LifetimeNotFound,
			background: "extended",
			want:       models.StatusExtended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissionStatus(tt.launchDate, tt.endOfLife, tt.background, now)
			if got != tt.want {
				t.Errorf("MissionStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
