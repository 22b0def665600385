package domain

// defaultCitySynonyms maps common alternate city spellings to their
// canonical form. Keys and values are in cleaned form (see Cleanup).
// A synonym file can extend or override these at startup
var defaultCitySynonyms = map[string]string{
	"bangalore":  "bengaluru",
	"blr":        "bengaluru",
	"bombay":     "mumbai",
	"calcutta":   "kolkata",
	"madras":     "chennai",
	"gurgaon":    "gurugram",
	"new delhi":  "delhi",
	"hyd":        "hyderabad",
	"vizag":      "visakhapatnam",
	"trivandrum": "thiruvananthapuram",
}

// defaultAreaSynonyms covers frequent locality aliases and misspellings
var defaultAreaSynonyms = map[string]string{
	"kormangala":   "koramangala",
	"koramangla":   "koramangala",
	"hsr":          "hsr layout",
	"indira nagar": "indiranagar",
	"marathalli":   "marathahalli",
	"white field":  "whitefield",
	"e city":       "electronic city",
	"ecity":        "electronic city",
	"j p nagar":    "jp nagar",
	"btm":          "btm layout",
}
