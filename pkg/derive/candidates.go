package derive

import (
	"strings"

	"github.com/dtnitsch/geosat-report/models"
)

// Servicing products that can be recommended for a satellite.
const (
	ProductMEV = "MEV"
	ProductMRV = "MRV"
	ProductMEP = "MEP"
)

// Keywords are matched as case-insensitive substrings of the background,
// so "payload" also hits "payloads" and unrelated sentences.
var (
	mevKeywords = []string{
		"life extension", "altitude control", "adjustment", "orbital adjustment",
		"propulsion support", "payload", "payload delivery", "relocation",
	}
	mrvKeywords = []string{
		"repair", "debris", "servicing", "maintenance", "refueling",
		"payload", "payload delivery",
	}
)

// MEP applies to GEO satellites strictly inside this mass band (kg).
const (
	mepMinMass = 1500
	mepMaxMass = 2500
)

// ProductCandidates recommends servicing products, always in the order
// MEV, MRV, MEP. The orbit test is case-sensitive on "GEO".
func ProductCandidates(mass models.Mass, orbitType, background string) string {
	text := strings.ToLower(background)
	geo := strings.Contains(orbitType, "GEO")

	var products []string
	if geo && containsAny(text, mevKeywords) {
		products = append(products, ProductMEV)
	}
	if containsAny(text, mrvKeywords) {
		products = append(products, ProductMRV)
	}
	if geo && mass.Available && mass.Kg > mepMinMass && mass.Kg < mepMaxMass {
		products = append(products, ProductMEP)
	}

	if len(products) == 0 {
		return models.NoProductCandidates
	}
	return strings.Join(products, ", ")
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
