package domain

import (
	"strings"
	"unicode"
)

// Kind selects which synonym table Normalize consults
type Kind int

// Normalization kinds
const (
	KindCity Kind = iota
	KindArea
	KindAmenity
)

// Normalizer folds free-text location and amenity values into canonical
// form so that "BLR", "blr." and "Bengaluru" all compare equal
type Normalizer struct {
	cities map[string]string
	areas  map[string]string
}

// NewNormalizer builds a normalizer from the built-in synonym tables with
// optional overrides merged on top. Override keys and values are cleaned
// before merging, so files may use any casing or punctuation
func NewNormalizer(cityOverrides, areaOverrides map[string]string) *Normalizer {
	n := &Normalizer{
		cities: make(map[string]string, len(defaultCitySynonyms)+len(cityOverrides)),
		areas:  make(map[string]string, len(defaultAreaSynonyms)+len(areaOverrides)),
	}
	mergeSynonyms(n.cities, defaultCitySynonyms)
	mergeSynonyms(n.cities, cityOverrides)
	mergeSynonyms(n.areas, defaultAreaSynonyms)
	mergeSynonyms(n.areas, areaOverrides)
	return n
}

func mergeSynonyms(dst, src map[string]string) {
	for k, v := range src {
		key := Cleanup(k)
		val := Cleanup(v)
		if key == "" || val == "" {
			continue
		}
		dst[key] = val
	}
}

// Normalize cleans raw text and, for cities and areas, folds known
// synonyms into their canonical spelling. Unknown values pass through
// in cleaned form; amenities are cleaned only
func (n *Normalizer) Normalize(raw string, kind Kind) string {
	cleaned := Cleanup(raw)
	if cleaned == "" {
		return ""
	}
	switch kind {
	case KindCity:
		if canonical, ok := n.cities[cleaned]; ok {
			return canonical
		}
	case KindArea:
		if canonical, ok := n.areas[cleaned]; ok {
			return canonical
		}
	}
	return cleaned
}

// Cleanup lower-cases text, strips punctuation and collapses whitespace.
// Underscores survive the punctuation strip and are then treated as
// separators, so "HSR_Layout" becomes "hsr layout"
func Cleanup(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.Join(strings.Fields(t), " ")
	t = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, t)
	t = strings.ReplaceAll(t, "_", " ")
	return strings.Join(strings.Fields(t), " ")
}
