package domain

import "sort"

// Review is an immutable rating plus free-text comment left on a
// product. Reviews have no identity of their own; two reviews with the
// same rating and comment are both kept.
type Review struct {
	Rating   Rating
	Comments string
}

// SortedReviews returns a copy of reviews ordered by ascending rating.
// The sort is stable, so reviews with equal ratings keep their
// insertion order and none are dropped.
func SortedReviews(reviews []Review) []Review {
	out := make([]Review, len(reviews))
	copy(out, reviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating < out[j].Rating
	})
	return out
}
