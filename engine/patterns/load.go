package patterns

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a pattern set.
//
//	manufacturers:
//	  JN1: Nissan
//	families:
//	  - make: Nissan
//	    wmi:
//	      JN1: {BEV: Altima}
//	    global: {AL: Altima}
type File struct {
	Manufacturers map[string]string `yaml:"manufacturers"`
	Families      []Family          `yaml:"families"`
}

// LoadYAML decodes a pattern file into a standalone set.
func LoadYAML(r io.Reader) (*Set, error) {
	f, err := decode(r)
	if err != nil {
		return nil, err
	}
	return NewSet(f.Families, f.Manufacturers)
}

// LoadFile reads a standalone pattern set from disk.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patterns: read %s: %w", path, err)
	}
	return LoadYAML(bytes.NewReader(data))
}

// Open loads path over the built-in set, or on its own when replace is set.
func Open(path string, replace bool) (*Set, error) {
	if replace {
		return LoadFile(path)
	}
	return Extend(path)
}

// Extend layers the families in path over the built-in set. A family in the
// file replaces the built-in family of the same make, compared without case.
func Extend(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patterns: read %s: %w", path, err)
	}
	f, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	override := make(map[string]bool, len(f.Families))
	for _, fam := range f.Families {
		override[strings.ToLower(strings.TrimSpace(fam.Make))] = true
	}
	families := append([]Family(nil), f.Families...)
	for _, fam := range builtinFamilies() {
		if !override[strings.ToLower(fam.Make)] {
			families = append(families, fam)
		}
	}
	manufacturers := make(map[string]string, len(builtinManufacturers)+len(f.Manufacturers))
	for k, v := range builtinManufacturers {
		manufacturers[k] = v
	}
	for k, v := range f.Manufacturers {
		manufacturers[k] = v
	}
	return NewSet(families, manufacturers)
}

// Unknown keys are rejected so typos in a hand-edited table surface at
// startup.
func decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("patterns: decode: %w", err)
	}
	return f, nil
}
