package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the rooms seed file
type Loader struct {
	filePath string
}

// NewLoader creates a new seed loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the rooms.yaml file. Unknown fields are
// rejected so a misspelled property fails at startup.
func (l *Loader) Load() (RoomsConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return RoomsConfig{}, fmt.Errorf("failed to read rooms file: %w", err)
	}

	var config RoomsConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return RoomsConfig{}, nil
		}
		return RoomsConfig{}, fmt.Errorf("failed to parse rooms yaml: %w", err)
	}

	return config, nil
}
