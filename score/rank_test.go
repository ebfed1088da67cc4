package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkme/linkme-api/schema"
)

func TestRank(t *testing.T) {
	far := request(schema.CategoryTools, schema.UrgencyFlexible, 0, 1)
	far.ID = "far"
	near := request(schema.CategoryShopping, schema.UrgencyFlexible, 0, 0.004)
	near.ID = "near"
	urgent := request(schema.CategoryShopping, schema.UrgencyUrgent, 0, 0.2)
	urgent.ID = "urgent"

	input := []schema.HelpRequest{far, near, urgent}
	ranked := Rank(input, schema.NewCategorySet(schema.CategoryShopping), &schema.Location{})

	assert.Len(t, ranked, 3)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, 90, *ranked[0].AIMatchScore)
	assert.Equal(t, "urgent", ranked[1].ID)
	assert.Equal(t, 70, *ranked[1].AIMatchScore)
	assert.Equal(t, "far", ranked[2].ID)
	assert.Equal(t, 10, *ranked[2].AIMatchScore)

	// the input listing is left untouched
	for _, r := range input {
		assert.Nil(t, r.AIMatchScore)
	}
}

func TestRankOrdersDistinctScoresDescending(t *testing.T) {
	requests := []schema.HelpRequest{
		request(schema.CategoryOther, schema.UrgencyFlexible, 0, 3),
		request(schema.CategoryTech, schema.UrgencyUrgent, 0, 0),
		request(schema.CategoryTech, schema.UrgencyFlexible, 0, 0.03),
		request(schema.CategoryOther, schema.UrgencyUrgent, 0, 0.07),
	}

	ranked := Rank(requests, schema.NewCategorySet(schema.CategoryTech), &schema.Location{})
	for i := 1; i < len(ranked); i++ {
		assert.True(t, *ranked[i-1].AIMatchScore >= *ranked[i].AIMatchScore)
	}
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil, nil, nil))
}
