package columns

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rel2avro/internal/common"
)

// LoadFile loads, parses and validates a column file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses and validates YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse column YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Columns {
		f.Columns[i].Name = strings.TrimSpace(f.Columns[i].Name)
		f.Columns[i].Type = strings.TrimSpace(f.Columns[i].Type)
	}
}

// Validate checks the file structure. It does not parse column types.
func (f *File) Validate() error {
	if f.Version != "1" {
		return fmt.Errorf("unsupported column file version %q", f.Version)
	}

	if common.IsEmpty(f.Columns) {
		return errors.New("column file must declare at least one column")
	}

	seen := make(map[string]int, len(f.Columns))
	for i, c := range f.Columns {
		if c.Name == "" {
			return fmt.Errorf("column #%d has no name", i+1)
		}

		if prev, ok := seen[c.Name]; ok {
			return fmt.Errorf("column %q declared twice (#%d and #%d)", c.Name, prev+1, i+1)
		}
		seen[c.Name] = i

		if c.Type == "" {
			return fmt.Errorf("column %q has no type", c.Name)
		}
	}

	return nil
}
