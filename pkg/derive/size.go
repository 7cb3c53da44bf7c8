package derive

import "github.com/dtnitsch/geosat-report/models"

// SizeClass buckets a satellite by mass: A from 1000 kg, B from 500 kg,
// N below that or when the mass is unknown.
func SizeClass(mass models.Mass) models.Class {
	switch {
	case !mass.Available:
		return models.ClassN
	case mass.Kg >= 1000:
		return models.ClassA
	case mass.Kg >= 500:
		return models.ClassB
	default:
		return models.ClassN
	}
}
