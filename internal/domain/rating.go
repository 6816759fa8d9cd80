package domain

import "math"

// Rating is the ordinal star rating attached to products and reviews.
type Rating int

const (
	NotRated Rating = iota
	OneStar
	TwoStars
	ThreeStars
	FourStars
	FiveStars
)

var ratingStars = [...]string{
	"☆☆☆☆☆",
	"★☆☆☆☆",
	"★★☆☆☆",
	"★★★☆☆",
	"★★★★☆",
	"★★★★★",
}

// Stars returns the display glyph for the rating.
func (r Rating) Stars() string {
	if r < NotRated || r > FiveStars {
		return ratingStars[NotRated]
	}
	return ratingStars[r]
}

// RatingFromOrdinal returns the rating at ordinal n, or NotRated when n
// is out of range. It never fails.
func RatingFromOrdinal(n int) Rating {
	if n < 0 || n > 5 {
		return NotRated
	}
	return Rating(n)
}

// RatingFromStars matches a display glyph back to its rating. Unknown
// text degrades to NotRated rather than failing.
func RatingFromStars(stars string) Rating {
	for i, s := range ratingStars {
		if s == stars {
			return Rating(i)
		}
	}
	return NotRated
}

// AverageRating derives a rating from accumulated reviews: the mean of
// all review ordinals rounded half-up and clamped to the valid range.
// No reviews yields NotRated.
func AverageRating(reviews []Review) Rating {
	if len(reviews) == 0 {
		return NotRated
	}
	sum := 0
	for _, r := range reviews {
		sum += int(r.Rating)
	}
	avg := float64(sum) / float64(len(reviews))
	n := int(math.Floor(avg + 0.5))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return Rating(n)
}
