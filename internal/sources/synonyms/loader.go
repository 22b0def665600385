package synonyms

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the synonyms file
type Loader struct {
	filePath string
}

// NewLoader creates a new synonyms loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the synonyms.yaml file. Unknown keys are
// rejected; an empty file yields empty tables.
func (l *Loader) Load() (Tables, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to read synonyms file: %w", err)
	}

	var tables Tables
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tables); err != nil {
		if errors.Is(err, io.EOF) {
			return Tables{}, nil
		}
		return Tables{}, fmt.Errorf("failed to parse synonyms yaml: %w", err)
	}

	return tables, nil
}
