package score

import (
	"sort"

	"github.com/linkme/linkme-api/schema"
)

// Rank annotates every request with its match score for the volunteer and
// orders them by score, highest first. Requests with equal scores keep
// their incoming order.
func Rank(requests []schema.HelpRequest, categories schema.CategorySet, volunteer *schema.Location) []schema.HelpRequest {
	ranked := make([]schema.HelpRequest, len(requests))
	for i, r := range requests {
		s := MatchScore(r, categories, volunteer)
		r.AIMatchScore = &s
		ranked[i] = r
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].AIMatchScore > *ranked[j].AIMatchScore
	})

	return ranked
}
