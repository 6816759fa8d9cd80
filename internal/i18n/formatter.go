package i18n

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

// Formatter renders products and reviews as localized display text for
// one locale, and parses locale-specific price and date input back into
// canonical values. It holds no mutable state.
type Formatter struct {
	locale  Locale
	printer *message.Printer
}

// Registry holds one formatter per supported locale tag.
type Registry struct {
	formatters map[string]*Formatter
	fallback   *Formatter
}

// NewRegistry builds formatters for every supported locale. An
// unrecognized defaultTag falls back to DefaultTag.
func NewRegistry(defaultTag string) *Registry {
	r := &Registry{formatters: make(map[string]*Formatter, len(locales))}
	for tag, loc := range locales {
		r.formatters[tag] = &Formatter{
			locale:  loc,
			printer: message.NewPrinter(loc.Lang),
		}
	}
	if f, ok := r.formatters[defaultTag]; ok {
		r.fallback = f
	} else {
		r.fallback = r.formatters[DefaultTag]
	}
	return r
}

// For returns the formatter for the given tag, or the default formatter
// when the tag is not recognized.
func (r *Registry) For(tag string) *Formatter {
	if f, ok := r.formatters[tag]; ok {
		return f
	}
	return r.fallback
}

// Text returns the localized display string for a template key, or the
// key itself when no template exists.
func (f *Formatter) Text(key string) string {
	if s, ok := f.locale.Strings[key]; ok {
		return s
	}
	return key
}

// FormatProduct renders the localized catalog line for a product,
// including its best-before date for food and its full review block.
func (f *Formatter) FormatProduct(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, f.Text("product"),
		p.Name, string(p.Type), f.FormatCurrency(p.Price), p.Rating.Stars())
	if p.Type == domain.TypeFood {
		b.WriteString(", ")
		fmt.Fprintf(&b, f.Text("best.before"), f.FormatDate(p.BestBefore))
	}
	b.WriteByte('\n')
	reviews := domain.SortedReviews(p.Reviews)
	if len(reviews) == 0 {
		b.WriteString(f.Text("no.review"))
		b.WriteByte('\n')
		return b.String()
	}
	for _, rev := range reviews {
		b.WriteString(f.FormatReview(rev))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatReview renders the localized review line.
func (f *Formatter) FormatReview(r domain.Review) string {
	return fmt.Sprintf(f.Text("review"), r.Rating.Stars(), r.Comments)
}

// FormatCurrency renders an amount in the locale's currency.
func (f *Formatter) FormatCurrency(d decimal.Decimal) string {
	amount, _ := d.Float64()
	return f.printer.Sprint(currency.Symbol(f.locale.Currency.Amount(amount)))
}

// FormatDate renders a date with the locale's date layout.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.locale.DateLayout)
}

// ParsePrice converts locale price text back to a canonical decimal.
// Currency symbols and grouping separators are dropped and the locale
// decimal separator is normalized before parsing.
func (f *Formatter) ParsePrice(text string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		case r == f.locale.DecimalSep:
			b.WriteByte('.')
		case r == f.locale.ThousandSep:
			// grouping separator, dropped
		case unicode.IsSpace(r) || unicode.IsSymbol(r) || unicode.IsLetter(r):
			// currency symbol or code, dropped
		default:
			return decimal.Zero, fmt.Errorf("%w: price %q", domain.ErrParse, text)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", domain.ErrParse, text)
	}
	return d, nil
}

// ParseDate converts locale date text back to a canonical date.
func (f *Formatter) ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(f.locale.DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", domain.ErrParse, text)
	}
	return t, nil
}
