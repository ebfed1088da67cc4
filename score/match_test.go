package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkme/linkme-api/schema"
)

func request(category schema.CategoryID, urgency schema.Urgency, lat, lng float64) schema.HelpRequest {
	return schema.HelpRequest{
		Category:  category,
		Urgency:   urgency,
		Latitude:  &lat,
		Longitude: &lng,
	}
}

type distanceScoreTestCase struct {
	km       float64
	expected int
}

func TestDistanceScore(t *testing.T) {
	cases := []distanceScoreTestCase{
		{0, 40},
		{0.99, 40},
		{1, 30},
		{4.99, 30},
		{5, 20},
		{9.99, 20},
		{10, 10},
		{12000, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, DistanceScore(c.km), "distance %f", c.km)
	}
}

func TestMatchScoreNearbyFlexible(t *testing.T) {
	// about 0.44 km apart
	r := request(schema.CategoryShopping, schema.UrgencyFlexible, 0, 0)
	volunteer := &schema.Location{Latitude: 0, Longitude: 0.004}

	assert.Equal(t, 90, MatchScore(r, schema.NewCategorySet(schema.CategoryShopping), volunteer))
}

func TestMatchScoreFarUrgent(t *testing.T) {
	// about 12 km apart
	r := request(schema.CategoryShopping, schema.UrgencyUrgent, 0, 0)
	volunteer := &schema.Location{Latitude: 0, Longitude: 0.108}

	assert.Equal(t, 70, MatchScore(r, schema.NewCategorySet(schema.CategoryShopping), volunteer))
}

func TestMatchScoreUnknownLocation(t *testing.T) {
	r := request(schema.CategoryTech, schema.UrgencyUrgent, 0, 0)
	categories := schema.NewCategorySet(schema.CategoryTech)

	assert.Equal(t, 85, MatchScore(r, categories, nil))

	r.Latitude = nil
	assert.Equal(t, 85, MatchScore(r, categories, &schema.Location{}))

	assert.Equal(t, 25, MatchScore(schema.HelpRequest{Category: schema.CategoryOther}, nil, nil))
}

func TestMatchScoreIsCapped(t *testing.T) {
	r := request(schema.CategoryTools, schema.UrgencyUrgent, 43.8563, 18.4131)
	volunteer := &schema.Location{Latitude: 43.8563, Longitude: 18.4131}

	assert.Equal(t, MaxMatchScore, MatchScore(r, schema.NewCategorySet(schema.CategoryTools), volunteer))
}

func TestMatchScoreBounds(t *testing.T) {
	volunteers := []*schema.Location{
		nil,
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.03},
		{Latitude: 0, Longitude: 0.06},
		{Latitude: 45, Longitude: 90},
	}
	sets := []schema.CategorySet{
		nil,
		schema.NewCategorySet(),
		schema.NewCategorySet(schema.HelpCategories...),
	}

	for _, category := range schema.HelpCategories {
		for _, urgency := range []schema.Urgency{schema.UrgencyUrgent, schema.UrgencyFlexible} {
			r := request(category, urgency, 0, 0)
			for _, v := range volunteers {
				for _, set := range sets {
					s := MatchScore(r, set, v)
					assert.True(t, s >= 0 && s <= MaxMatchScore, "score %d out of range", s)
				}
			}
		}
	}
}

func TestMatchScoreCategoryMonotonic(t *testing.T) {
	volunteers := []*schema.Location{nil, {Latitude: 0, Longitude: 0.02}, {Latitude: 1, Longitude: 1}}

	for _, category := range schema.HelpCategories {
		for _, urgency := range []schema.Urgency{schema.UrgencyUrgent, schema.UrgencyFlexible} {
			r := request(category, urgency, 0, 0)
			for _, v := range volunteers {
				without := schema.NewCategorySet(schema.CategoryOther)
				if category == schema.CategoryOther {
					without = schema.NewCategorySet(schema.CategoryTech)
				}
				with := schema.NewCategorySet(schema.CategoryOther, schema.CategoryTech, category)

				assert.True(t, MatchScore(r, with, v) >= MatchScore(r, without, v))
			}
		}
	}
}

func TestMatchScoreDistanceOrdering(t *testing.T) {
	r := request(schema.CategoryCleaning, schema.UrgencyFlexible, 0, 0)
	categories := schema.NewCategorySet(schema.CategoryCleaning)

	previous := MaxMatchScore
	for _, lng := range []float64{0, 0.004, 0.02, 0.05, 0.08, 0.2, 2, 20} {
		s := MatchScore(r, categories, &schema.Location{Latitude: 0, Longitude: lng})
		assert.True(t, s <= previous, "closer location scored lower at %f", lng)
		previous = s
	}
}
