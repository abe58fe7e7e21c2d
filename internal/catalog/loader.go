package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only catalog schema version understood.
const CurrentVersion = "1"

// File is the on-disk YAML catalog.
type File struct {
	Version  string  `yaml:"version"`
	Isoforms []Entry `yaml:"isoforms"`
}

// LoadFile loads, parses and validates a YAML catalog from the given path.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

// Parse parses YAML data into validated entries, preserving file order.
func Parse(data []byte) ([]Entry, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&f)

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported catalog version %q (want %q)", f.Version, CurrentVersion)
	}
	if err := Validate(f.Isoforms); err != nil {
		return nil, err
	}

	return f.Isoforms, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Isoforms {
		normalize(&f.Isoforms[i])
	}
}

// Marshal serializes entries as a catalog file.
func Marshal(entries []Entry) ([]byte, error) {
	return yaml.Marshal(File{Version: CurrentVersion, Isoforms: entries})
}
