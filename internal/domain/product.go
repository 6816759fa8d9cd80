package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType discriminates the product variants.
type ProductType string

const (
	TypeFood  ProductType = "Food"
	TypeDrink ProductType = "Drink"
)

// DiscountRate is the base discount applied when a variant's discount
// condition holds.
var DiscountRate = decimal.NewFromFloat(0.10)

// Drink discounts apply only strictly inside this evening window.
var (
	drinkWindowOpen  = 17*3600 + 30*60 // 17:30 in seconds of day
	drinkWindowClose = 18*3600 + 30*60 // 18:30 in seconds of day
)

// Product is a purchasable catalog item. The ID is assigned once by the
// catalog service and is the sole identity key; all other fields carry
// no identity. BestBefore is only meaningful for Food and stays zero
// for Drink.
type Product struct {
	ID         int
	Type       ProductType
	Name       string
	Price      decimal.Decimal
	Rating     Rating
	BestBefore time.Time
	Reviews    []Review
}

// Equal reports whether two products are the same catalog entity.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID
}

// Less orders products by id.
func (p Product) Less(other Product) bool {
	return p.ID < other.ID
}

// Discount returns the discount in effect at the given instant, rounded
// to two decimals half-up. Drinks are discounted only during the
// evening happy-hour window, food only on its best-before day.
func (p Product) Discount(at time.Time) decimal.Decimal {
	base := p.Price.Mul(DiscountRate).Round(2)

	switch p.Type {
	case TypeDrink:
		sec := at.Hour()*3600 + at.Minute()*60 + at.Second()
		if sec > drinkWindowOpen && sec < drinkWindowClose {
			return base
		}
	case TypeFood:
		y1, m1, d1 := p.BestBefore.Date()
		y2, m2, d2 := at.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return base
		}
	}
	return decimal.Zero
}

// ApplyRating returns a copy of the product carrying the new rating.
// Identity and reviews are preserved; the receiver is not modified.
func (p Product) ApplyRating(rating Rating) Product {
	p.Rating = rating
	return p
}

// WithReview returns a copy of the product with the review appended.
// The receiver's review slice is left untouched.
func (p Product) WithReview(review Review) Product {
	reviews := make([]Review, len(p.Reviews), len(p.Reviews)+1)
	copy(reviews, p.Reviews)
	p.Reviews = append(reviews, review)
	return p
}

// RecordStore is the persistence backend for catalog records. One
// record file exists per product; the in-memory catalog stays
// authoritative when a store operation fails.
type RecordStore interface {
	// LoadAll decodes every record file in the data folder, skipping
	// corrupt files.
	LoadAll() ([]Product, error)

	// MaxID returns the largest product id embedded in the record file
	// names, or 0 when the folder holds none.
	MaxID() (int, error)

	// Write persists the product's record file. Rewrites are idempotent:
	// an unchanged record is not touched.
	Write(product Product) error

	// Delete removes the product's record file.
	Delete(id int) error
}
