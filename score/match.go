package score

import (
	"github.com/linkme/linkme-api/geo"
	"github.com/linkme/linkme-api/schema"
)

const (
	MaxMatchScore = 100

	CategoryMatchWeight  = 50
	UnknownDistanceScore = 25
	UrgentWeight         = 10
)

// DistanceScore maps the distance between a volunteer and a request to its
// match score component. Bands are exclusive and evaluated closest first.
func DistanceScore(km float64) int {
	switch {
	case km < 1:
		return 40
	case km < 5:
		return 30
	case km < 10:
		return 20
	default:
		return 10
	}
}

// MatchScore rates how well a request fits a volunteer, from 0 to 100.
// Location is optional on both sides; when either is missing a flat
// distance component is used.
func MatchScore(request schema.HelpRequest, categories schema.CategorySet, volunteer *schema.Location) int {
	score := 0

	if categories.Has(request.Category) {
		score += CategoryMatchWeight
	}

	if loc := request.Location(); loc != nil && volunteer != nil {
		score += DistanceScore(geo.DistanceKm(loc.Latitude, loc.Longitude, volunteer.Latitude, volunteer.Longitude))
	} else {
		score += UnknownDistanceScore
	}

	if request.Urgency == schema.UrgencyUrgent {
		score += UrgentWeight
	}

	if score > MaxMatchScore {
		return MaxMatchScore
	}
	return score
}
