package i18n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Locale bundles everything needed to render and parse catalog text for
// one supported language tag: the currency, the date layout, the
// numeric separators used when parsing user input, and the display
// string templates.
type Locale struct {
	Tag         string
	Lang        language.Tag
	Currency    currency.Unit
	DateLayout  string
	DecimalSep  rune
	ThousandSep rune
	Strings     map[string]string
}

// DefaultTag is used when a caller supplies an unrecognized tag.
const DefaultTag = "en_GB"

// locales enumerates the supported tags. An unknown tag always falls
// back to DefaultTag, never an error.
var locales = map[string]Locale{
	"en_GB": {
		Tag:         "en_GB",
		Lang:        language.BritishEnglish,
		Currency:    currency.GBP,
		DateLayout:  "02/01/2006",
		DecimalSep:  '.',
		ThousandSep: ',',
		Strings: map[string]string{
			"product":     "Product: %s, Type: %s, Price: %s, Rating: %s",
			"best.before": "Best before: %s",
			"review":      "Review: %s, %s",
			"no.review":   "Not reviewed",
		},
	},
	"en_US": {
		Tag:         "en_US",
		Lang:        language.AmericanEnglish,
		Currency:    currency.USD,
		DateLayout:  "01/02/2006",
		DecimalSep:  '.',
		ThousandSep: ',',
		Strings: map[string]string{
			"product":     "Product: %s, Type: %s, Price: %s, Rating: %s",
			"best.before": "Best before: %s",
			"review":      "Review: %s, %s",
			"no.review":   "Not reviewed",
		},
	},
	"fr_FR": {
		Tag:         "fr_FR",
		Lang:        language.French,
		Currency:    currency.EUR,
		DateLayout:  "02/01/2006",
		DecimalSep:  ',',
		ThousandSep: ' ',
		Strings: map[string]string{
			"product":     "Produit: %s, Type: %s, Prix: %s, Note: %s",
			"best.before": "A consommer avant: %s",
			"review":      "Avis: %s, %s",
			"no.review":   "Non evalue",
		},
	},
	"de_DE": {
		Tag:         "de_DE",
		Lang:        language.German,
		Currency:    currency.EUR,
		DateLayout:  "02.01.2006",
		DecimalSep:  ',',
		ThousandSep: '.',
		Strings: map[string]string{
			"product":     "Produkt: %s, Typ: %s, Preis: %s, Bewertung: %s",
			"best.before": "Mindestens haltbar bis: %s",
			"review":      "Bewertung: %s, %s",
			"no.review":   "Nicht bewertet",
		},
	},
	"es_ES": {
		Tag:         "es_ES",
		Lang:        language.EuropeanSpanish,
		Currency:    currency.EUR,
		DateLayout:  "02/01/2006",
		DecimalSep:  ',',
		ThousandSep: '.',
		Strings: map[string]string{
			"product":     "Producto: %s, Tipo: %s, Precio: %s, Calificacion: %s",
			"best.before": "Consumir antes de: %s",
			"review":      "Resena: %s, %s",
			"no.review":   "No evaluado",
		},
	},
}

// SupportedTags lists the recognized locale tags.
func SupportedTags() []string {
	tags := make([]string, 0, len(locales))
	for tag := range locales {
		tags = append(tags, tag)
	}
	return tags
}
