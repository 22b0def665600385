package domain

import "testing"

func TestCleanup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims and lowers", input: "  Bengaluru  ", want: "bengaluru"},
		{name: "strips punctuation", input: "Koramangala!!!", want: "koramangala"},
		{name: "collapses whitespace", input: "hsr   layout", want: "hsr layout"},
		{name: "underscore becomes separator", input: "HSR_Layout", want: "hsr layout"},
		{name: "hyphen removed without gap", input: "Wi-Fi", want: "wifi"},
		{name: "dots removed", input: "  J.P.  Nagar ", want: "jp nagar"},
		{name: "digits kept", input: "Sector 21", want: "sector 21"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!.,", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cleanup(tt.input); got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCity(t *testing.T) {
	n := NewNormalizer(nil, nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "synonym short form", input: "BLR", want: "bengaluru"},
		{name: "synonym with punctuation", input: "Bangalore!", want: "bengaluru"},
		{name: "canonical passes through", input: "Bengaluru", want: "bengaluru"},
		{name: "unknown city cleaned only", input: "  Mysuru ", want: "mysuru"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input, KindCity); got != tt.want {
				t.Errorf("Normalize(%q, KindCity) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeArea(t *testing.T) {
	n := NewNormalizer(nil, nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short form expands", input: "HSR", want: "hsr layout"},
		{name: "spaced variant folds", input: "Indira Nagar", want: "indiranagar"},
		{name: "hyphenated variant folds", input: "E-City", want: "electronic city"},
		{name: "misspelling folds", input: "Marathalli", want: "marathahalli"},
		{name: "unknown area cleaned only", input: "Jayanagar", want: "jayanagar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input, KindArea); got != tt.want {
				t.Errorf("Normalize(%q, KindArea) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAmenitySkipsSynonymTables(t *testing.T) {
	n := NewNormalizer(nil, nil)

	// "bangalore" is a city synonym but amenities are cleaned only
	if got := n.Normalize("Bangalore", KindAmenity); got != "bangalore" {
		t.Errorf("Normalize(Bangalore, KindAmenity) = %q, want %q", got, "bangalore")
	}
	if got := n.Normalize("Washing_Machine", KindAmenity); got != "washing machine" {
		t.Errorf("Normalize(Washing_Machine, KindAmenity) = %q, want %q", got, "washing machine")
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := NewNormalizer(nil, nil)

	inputs := []string{"BLR", "Bangalore", "  HSR ", "Indira Nagar", "Wi-Fi", "Mysuru", "Sector 21", ""}
	kinds := []Kind{KindCity, KindArea, KindAmenity}

	for _, input := range inputs {
		for _, kind := range kinds {
			once := n.Normalize(input, kind)
			twice := n.Normalize(once, kind)
			if once != twice {
				t.Errorf("Normalize(%q, %v) not idempotent: %q then %q", input, kind, once, twice)
			}
		}
	}
}

func TestNormalizerOverrides(t *testing.T) {
	n := NewNormalizer(
		map[string]string{"Blore": "Bengaluru", "bangalore": "Bangalore City"},
		map[string]string{"4th Block": "Jayanagar"},
	)

	// New entries work and are cleaned on both sides
	if got := n.Normalize("BLORE", KindCity); got != "bengaluru" {
		t.Errorf("override Normalize(BLORE) = %q, want %q", got, "bengaluru")
	}
	if got := n.Normalize("4th block!", KindArea); got != "jayanagar" {
		t.Errorf("override Normalize(4th block!) = %q, want %q", got, "jayanagar")
	}

	// Overrides win over the built-in table
	if got := n.Normalize("bangalore", KindCity); got != "bangalore city" {
		t.Errorf("override Normalize(bangalore) = %q, want %q", got, "bangalore city")
	}

	// Built-ins not overridden still apply
	if got := n.Normalize("BLR", KindCity); got != "bengaluru" {
		t.Errorf("builtin Normalize(BLR) = %q, want %q", got, "bengaluru")
	}
}
