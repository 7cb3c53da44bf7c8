// Package models defines the satellite records and configuration shared across packages.
package models

import (
	"encoding/json"
	"strconv"
)

// Sentinel values written in place of data that could not be read or derived.
const (
	Cancelled           = "cancelled"
	LifetimeNotFound    = "Lifetime data not found"
	MassNotAvailable    = "Mass data not available"
	OrbitNotAvailable   = "Orbit type not available"
	NoProductCandidates = "No P.P.C determined"
	PhotoNotAvailable   = "No photo for this satellite is currently available"
)

// Status is the M.S.D (Mission Status Details) of a satellite.
type Status string

const (
	StatusCancelled       Status = "Cancelled"
	StatusMissionComplete Status = "Mission complete"
	StatusPlanned         Status = "Planned"
	StatusOperational     Status = "Operational"
	StatusExtended        Status = "Extended Mission"
)

// Class is the size class derived from the dry mass.
type Class string

const (
	ClassA Class = "Class A"
	ClassB Class = "Class B"
	ClassN Class = "Class N"
)

// Mass is a mass in kilograms that may be missing from the catalog page.
type Mass struct {
	Kg        float64
	Available bool
}

// KnownMass returns an available mass of kg kilograms.
func KnownMass(kg float64) Mass {
	return Mass{Kg: kg, Available: true}
}

func (m Mass) String() string {
	if !m.Available {
		return MassNotAvailable
	}
	return strconv.FormatFloat(m.Kg, 'f', -1, 64)
}

// MarshalJSON writes the mass as a number, or the sentinel string when unknown.
func (m Mass) MarshalJSON() ([]byte, error) {
	if !m.Available {
		return json.Marshal(MassNotAvailable)
	}
	return json.Marshal(m.Kg)
}

// MarshalYAML mirrors MarshalJSON.
func (m Mass) MarshalYAML() (interface{}, error) {
	if !m.Available {
		return MassNotAvailable, nil
	}
	return m.Kg, nil
}

// RawFields holds the text read from one catalog page before any derivation.
// An empty string means the field was absent on the page.
type RawFields struct {
	Link        string `json:"link" yaml:"link"`
	Name        string `json:"name" yaml:"name"`
	MissionType string `json:"mission_type" yaml:"mission_type"`
	LaunchDate  string `json:"launch_date" yaml:"launch_date"`
	Lifetime    string `json:"lifetime" yaml:"lifetime"`
	MassText    string `json:"mass_text,omitempty" yaml:"mass_text,omitempty"`
	OrbitType   string `json:"orbit_type,omitempty" yaml:"orbit_type,omitempty"`
	Background  string `json:"background" yaml:"background"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// SatelliteRecord is one row of the report.
type SatelliteRecord struct {
	Position          int    `json:"position" yaml:"position"`
	Link              string `json:"link" yaml:"link"`
	Name              string `json:"name" yaml:"name"`
	MissionType       string `json:"mission_type" yaml:"mission_type"`
	BackgroundFull    string `json:"background_full" yaml:"background_full"`
	BackgroundSummary string `json:"background_summary" yaml:"background_summary"`
	LaunchDate        string `json:"launch_date" yaml:"launch_date"`
	Lifetime          string `json:"lifetime" yaml:"lifetime"`
	EndOfLife         string `json:"end_of_life" yaml:"end_of_life"`
	Mass              Mass   `json:"mass" yaml:"mass"`
	OrbitType         string `json:"orbit_type" yaml:"orbit_type"`
	SizeClass         Class  `json:"size_class" yaml:"size_class"`
	MissionStatus     Status `json:"mission_status" yaml:"mission_status"`
	ProductCandidates string `json:"product_candidates" yaml:"product_candidates"`
	ImageURL          string `json:"image_url" yaml:"image_url"`
}

// MassLabel renders the mass column, using the sentinel when unknown.
func (r SatelliteRecord) MassLabel() string {
	return r.Mass.String()
}
