package timetable

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Schema is the top-level YAML structure of a timetable file.
type Schema struct {
	// Segments are named, reusable runs of blocks.
	Segments map[string][]BlockSchema `yaml:"segments"`
	// Days maps lowercase weekday names to the segments that make up the day,
	// concatenated in order.
	Days map[string][]string `yaml:"days"`
}

// BlockSchema is a single block entry. Times use "H:MM" without AM/PM.
type BlockSchema struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DecodeSchema parses timetable YAML without validating it.
func DecodeSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing timetable yaml: %w", err)
	}
	return &schema, nil
}

// LoadSchema reads and parses a timetable YAML file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading timetable: %w", err)
	}
	return DecodeSchema(data)
}

// DefaultSchemaYAML returns the built-in timetable document.
func DefaultSchemaYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
