package synonyms

// Tables represents the structure of synonyms.yaml: flat alias -> canonical
// maps for cities and areas. Casing and punctuation in the file do not
// matter; entries are cleaned when merged into the normalizer
type Tables struct {
	Cities map[string]string `yaml:"cities"`
	Areas  map[string]string `yaml:"areas"`
}
