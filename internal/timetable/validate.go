package timetable

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/bell/internal/domain"
)

// ValidateSchema checks a schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSchema(schema *Schema) []error {
	var errs []error

	if len(schema.Days) == 0 {
		errs = append(errs, fmt.Errorf("days: at least one weekday is required"))
	}

	for _, name := range sortedKeys(schema.Segments) {
		errs = append(errs, validateSegment(name, schema.Segments[name])...)
	}

	for _, day := range sortedKeys(schema.Days) {
		errs = append(errs, validateDay(day, schema.Days[day], schema.Segments)...)
	}

	return errs
}

func validateSegment(name string, blocks []BlockSchema) []error {
	var errs []error

	if len(blocks) == 0 {
		errs = append(errs, fmt.Errorf("segments.%s: must contain at least one block", name))
	}
	for i, b := range blocks {
		field := fmt.Sprintf("segments.%s[%d]", name, i)
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", field))
		}
		if _, err := domain.ParseBlock(b.Name, b.Start, b.End); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	return errs
}

func validateDay(day string, segments []string, defined map[string][]BlockSchema) []error {
	var errs []error

	if _, ok := weekdayFromKey(day); !ok {
		errs = append(errs, fmt.Errorf("days.%s: unknown weekday (use full lowercase names such as \"monday\")", day))
	}
	if len(segments) == 0 {
		errs = append(errs, fmt.Errorf("days.%s: must list at least one segment", day))
	}

	complete := true
	for _, seg := range segments {
		if _, ok := defined[seg]; !ok {
			errs = append(errs, fmt.Errorf("days.%s: unknown segment %q", day, seg))
			complete = false
		}
	}
	if !complete {
		return errs
	}

	// Block-level errors are reported once per segment; only check the
	// assembled day when every block parsed.
	blocks, err := assembleDay(segments, defined)
	if err != nil {
		return errs
	}
	if err := blocks.CheckOrder(); err != nil {
		errs = append(errs, fmt.Errorf("days.%s: %w", day, err))
	}

	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
