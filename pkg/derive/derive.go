package derive

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dtnitsch/geosat-report/models"
)

var massNumber = regexp.MustCompile(`\d+\.?\d*`)

// ParseMass reads the first number in text as kilograms.
func ParseMass(text string) models.Mass {
	match := massNumber.FindString(text)
	if match == "" {
		return models.Mass{}
	}
	kg, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return models.Mass{}
	}
	return models.KnownMass(kg)
}

// Derive builds a complete record from the raw fields of one page.
// The result depends on raw and now only.
func Derive(raw models.RawFields, now time.Time) models.SatelliteRecord {
	mass := ParseMass(raw.MassText)

	orbit := strings.TrimSpace(raw.OrbitType)
	if orbit == "" {
		orbit = models.OrbitNotAvailable
	}
	image := strings.TrimSpace(raw.ImageURL)
	if image == "" {
		image = models.PhotoNotAvailable
	}

	eol := EndOfLife(raw.LaunchDate, raw.Lifetime)

	return models.SatelliteRecord{
		Link:              raw.Link,
		Name:              raw.Name,
		MissionType:       raw.MissionType,
		BackgroundFull:    raw.Background,
		BackgroundSummary: Summarize(raw.Background),
		LaunchDate:        raw.LaunchDate,
		Lifetime:          raw.Lifetime,
		EndOfLife:         eol,
		Mass:              mass,
		OrbitType:         orbit,
		SizeClass:         SizeClass(mass),
		MissionStatus:     MissionStatus(raw.LaunchDate, eol, raw.Background, now),
		ProductCandidates: ProductCandidates(mass, orbit, raw.Background),
		ImageURL:          image,
	}
}

// Deriver derives records against a clock.
type Deriver struct {
	Now func() time.Time
}

// NewDeriver returns a Deriver on the wall clock.
func NewDeriver() *Deriver {
	return &Deriver{Now: time.Now}
}

// Derive calls Derive with the deriver's current time.
func (d *Deriver) Derive(raw models.RawFields) models.SatelliteRecord {
	now := time.Now
	if d != nil && d.Now != nil {
		now = d.Now
	}
	return Derive(raw, now())
}
