package typecheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a YAML document listing declarations to compile as a set.
// Embedding applications use manifests to wrap whole binding tables, and
// the CLI vets them ahead of run time.
//
//	version: 1
//	declarations:
//	  - decl: "string.format(string, ?any...)"
//	  - decl: "table.insert(table, [int], any)"
//	    doc: position defaults to the end of the list
type Manifest struct {
	Version      int             `yaml:"version" validate:"required,eq=1"`
	Declarations []ManifestEntry `yaml:"declarations" validate:"required,min=1,dive"`
}

// ManifestEntry is one declaration in a manifest.
type ManifestEntry struct {
	Decl string `yaml:"decl" validate:"required"`
	Doc  string `yaml:"doc,omitempty"`
}

// ParseManifest decodes and validates a manifest document, then compiles
// every declaration in it on the checker. The first malformed declaration
// fails the whole load; manifests are configuration and fail fast.
func (c *Checker) ParseManifest(data []byte) ([]*Declaration, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		if valErrs, ok := asValidationErrors(err); ok {
			_, messages := foldValidationErrors(valErrs)
			return nil, fmt.Errorf("invalid manifest: %s", joinSemicolons(messages))
		}
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	decls := make([]*Declaration, 0, len(m.Declarations))
	for i, entry := range m.Declarations {
		d, err := c.Compile(entry.Decl)
		if err != nil {
			return nil, fmt.Errorf("declarations[%d]: %w", i, err)
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// LoadManifest reads and parses a manifest file.
func (c *Checker) LoadManifest(path string) ([]*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return c.ParseManifest(data)
}

// LoadManifest reads and parses a manifest file on the default checker.
func LoadManifest(path string) ([]*Declaration, error) {
	return defaultChecker.LoadManifest(path)
}

// ParseManifest parses a manifest document on the default checker.
func ParseManifest(data []byte) ([]*Declaration, error) {
	return defaultChecker.ParseManifest(data)
}
