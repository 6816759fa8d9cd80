package file

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

func TestEncode_Food(t *testing.T) {
	product := domain.Product{
		ID:         3,
		Type:       domain.TypeFood,
		Name:       "Cake",
		Price:      decimal.NewFromFloat(3.99),
		Rating:     domain.TwoStars,
		BestBefore: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	record := Encode(product)

	assert.Equal(t,
		"name:Cake,type:Food,price:3.99,rating:★★☆☆☆,bestBefore:2026-03-10\nNot reviewed\n",
		record)
}

func TestEncode_DrinkWithReviews(t *testing.T) {
	product := domain.Product{
		ID:     1,
		Type:   domain.TypeDrink,
		Name:   "Tea",
		Price:  decimal.NewFromFloat(1.99),
		Rating: domain.FourStars,
		Reviews: []domain.Review{
			{Rating: domain.FiveStars, Comments: "perfect"},
			{Rating: domain.ThreeStars, Comments: "ok"},
		},
	}

	record := Encode(product)

	assert.Equal(t,
		"name:Tea,type:Drink,price:1.99,rating:★★★★☆\n"+
			"rating:★★★☆☆\tok\n"+
			"rating:★★★★★\tperfect\n",
		record)
}

func TestDecode_RoundTrip(t *testing.T) {
	original := domain.Product{
		ID:         9,
		Type:       domain.TypeFood,
		Name:       "Bread",
		Price:      decimal.NewFromFloat(0.99),
		Rating:     domain.ThreeStars,
		BestBefore: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Reviews: []domain.Review{
			{Rating: domain.TwoStars, Comments: "stale"},
			{Rating: domain.FourStars, Comments: "fresh"},
		},
	}

	decoded, err := Decode(9, Encode(original))
	require.NoError(t, err)

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Type, decoded.Type)
	assert.Equal(t, original.Name, decoded.Name)
	assert.True(t, original.Price.Equal(decoded.Price))
	assert.Equal(t, original.Rating, decoded.Rating)
	assert.True(t, original.BestBefore.Equal(decoded.BestBefore))
	assert.ElementsMatch(t, original.Reviews, decoded.Reviews)
}

func TestDecode_ToleratesCurrencySymbol(t *testing.T) {
	decoded, err := Decode(1, "name:Tea,type:Drink,price:£1.99,rating:★★★★☆\nNot reviewed\n")
	require.NoError(t, err)

	assert.True(t, decoded.Price.Equal(decimal.NewFromFloat(1.99)))
}

func TestDecode_FoodRequiresBestBefore(t *testing.T) {
	_, err := Decode(1, "name:Cake,type:Food,price:3.99,rating:☆☆☆☆☆\nNot reviewed\n")

	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"no fields":    "just some text\n",
		"unknown type": "name:X,type:Gadget,price:1.00,rating:☆☆☆☆☆\n",
		"bad price":    "name:X,type:Drink,price:abc,rating:☆☆☆☆☆\n",
		"missing name": "name:,type:Drink,price:1.00,rating:☆☆☆☆☆\n",
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(1, contents)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestDecode_SkipsBadReviewRows(t *testing.T) {
	contents := "name:Tea,type:Drink,price:1.99,rating:★★★★☆\n" +
		"rating:★★★☆☆\tok\n" +
		"garbage without a tab\n"

	decoded, err := Decode(1, contents)
	require.NoError(t, err)

	assert.Len(t, decoded.Reviews, 1)
	assert.Equal(t, "ok", decoded.Reviews[0].Comments)
}

func TestDecode_UnknownRatingLabelDegrades(t *testing.T) {
	decoded, err := Decode(1, "name:Tea,type:Drink,price:1.99,rating:banana\nNot reviewed\n")
	require.NoError(t, err)

	assert.Equal(t, domain.NotRated, decoded.Rating)
}
