package derive

import (
	"testing"

	"github.com/dtnitsch/geosat-report/models"
)

func TestEndOfLife(t *testing.T) {
	tests := []struct {
		name       string
		launchDate string
		lifetime   string
		want       string
	}{
		{
			name:       "full date advances the year",
			launchDate: "15.03.2010",
			lifetime:   "15 years",
			want:       "15.03.2025",
		},
		{
			name:       "bare year",
			launchDate: "2010",
			lifetime:   "15 years",
			want:       "2025",
		},
		{
			name:       "single digit day and month are padded",
			launchDate: "1.2.2005",
			lifetime:   "12 years",
			want:       "01.02.2017",
		},
		{
			name:       "full date past year 9999",
			launchDate: "15.03.2010",
			lifetime:   "10000 years",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "full date ending in year 9999",
			launchDate: "15.03.2010",
			lifetime:   "7989 years",
			want:       "15.03.9999",
		},
		{
			name:       "bare year past 9999",
			launchDate: "2010",
			lifetime:   "8000 years",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "bare year with overflowing lifetime",
			launchDate: "2010",
			lifetime:   "9223372036854775000 years",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "zero lifetime keeps the date",
			launchDate: "07.11.1999",
			lifetime:   "0",
			want:       "07.11.1999",
		},
		{
			name:       "first integer wins",
			launchDate: "2001",
			lifetime:   "planned 12 years, extended to 17",
			want:       "2013",
		},
		{
			name:       "cancelled launch",
			launchDate: "Cancelled",
			lifetime:   "15 years",
			want:       models.Cancelled,
		},
		{
			name:       "cancelled ignores missing lifetime",
			launchDate: "(cancelled)",
			lifetime:   "",
			want:       models.Cancelled,
		},
		{
			name:       "lifetime without digits",
			launchDate: "15.03.2010",
			lifetime:   "unknown",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "malformed full date",
			launchDate: "15.13.2010",
			lifetime:   "15 years",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "neither date nor year",
			launchDate: "2010s",
			lifetime:   "15 years",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "leap day into a common year",
			launchDate: "29.02.2008",
			lifetime:   "15 years",
			want:       models.LifetimeNotFound,
		},
		{
			name:       "leap day into a leap year",
			launchDate: "29.02.2008",
			lifetime:   "16 years",
			want:       "29.02.2024",
		},
		{
			name:       "empty launch date",
			launchDate: "",
			lifetime:   "15 years",
			want:       models.LifetimeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndOfLife(tt.launchDate, tt.lifetime)
			if got != tt.want {
				t.Errorf("EndOfLife(%q, %q) = %q, want %q", tt.launchDate, tt.lifetime, got, tt.want)
			}
		})
	}
}
