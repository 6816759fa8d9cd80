package file

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

// Record layout, stable across locales so files round-trip:
//
//	name:<text>,type:<Food|Drink>,price:<decimal>,rating:<stars>[,bestBefore:<yyyy-MM-dd>]
//	rating:<stars>\t<comment>
//	...
//
// A product without reviews carries the sentinel line instead of review
// rows. Embedded commas in names and tabs in comments are a known
// limitation of the format; they are not escaped.
const (
	recordDateLayout = "2006-01-02"
	noReviewSentinel = "Not reviewed"
)

// Encode renders the product's record file content.
func Encode(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name:%s,type:%s,price:%s,rating:%s",
		p.Name, p.Type, p.Price.StringFixed(2), p.Rating.Stars())
	if p.Type == domain.TypeFood {
		fmt.Fprintf(&b, ",bestBefore:%s", p.BestBefore.Format(recordDateLayout))
	}
	b.WriteByte('\n')

	if len(p.Reviews) == 0 {
		b.WriteString(noReviewSentinel)
		b.WriteByte('\n')
		return b.String()
	}
	for _, r := range domain.SortedReviews(p.Reviews) {
		fmt.Fprintf(&b, "rating:%s\t%s\n", r.Rating.Stars(), r.Comments)
	}
	return b.String()
}

// Decode parses record file contents back into a product. The caller
// supplies the id, which lives in the file name rather than the record.
// A missing or unparseable first line fails the whole record; a bad
// review row only skips that row.
func Decode(id int, contents string) (domain.Product, error) {
	lines := strings.Split(strings.TrimRight(contents, "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return domain.Product{}, fmt.Errorf("%w: empty record", domain.ErrParse)
	}

	p, err := decodeHeader(lines[0])
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id

	for _, line := range lines[1:] {
		if line == "" || line == noReviewSentinel {
			continue
		}
		review, ok := decodeReview(line)
		if !ok {
			continue
		}
		p.Reviews = append(p.Reviews, review)
	}
	return p, nil
}

func decodeHeader(line string) (domain.Product, error) {
	fields := map[string]string{}
	for _, field := range strings.Split(line, ",") {
		parts := strings.SplitN(field, ":", 2)
		if len(parts) != 2 {
			return domain.Product{}, fmt.Errorf("%w: malformed field %q", domain.ErrParse, field)
		}
		fields[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	name, ok := fields["name"]
	if !ok || name == "" {
		return domain.Product{}, fmt.Errorf("%w: record has no name", domain.ErrParse)
	}

	price, err := parsePrice(fields["price"])
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		Name:   name,
		Price:  price,
		Rating: domain.RatingFromStars(fields["rating"]),
	}

	switch domain.ProductType(fields["type"]) {
	case domain.TypeDrink:
		p.Type = domain.TypeDrink
	case domain.TypeFood:
		p.Type = domain.TypeFood
		bestBefore, err := time.Parse(recordDateLayout, fields["bestBefore"])
		if err != nil {
			return domain.Product{}, fmt.Errorf("%w: bestBefore %q", domain.ErrParse, fields["bestBefore"])
		}
		p.BestBefore = bestBefore
	default:
		return domain.Product{}, fmt.Errorf("%w: unknown type %q", domain.ErrParse, fields["type"])
	}
	return p, nil
}

func decodeReview(line string) (domain.Review, bool) {
	parts := strings.SplitN(line, "\t", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "rating:") {
		return domain.Review{}, false
	}
	return domain.Review{
		Rating:   domain.RatingFromStars(strings.TrimPrefix(parts[0], "rating:")),
		Comments: parts[1],
	}, true
}

// parsePrice reads the canonical record price. Files written by older
// tooling may carry a leading currency symbol, which is tolerated.
func parsePrice(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimLeftFunc(text, func(r rune) bool {
		return unicode.IsSymbol(r) || unicode.IsSpace(r)
	})
	price, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", domain.ErrParse, text)
	}
	return price, nil
}
