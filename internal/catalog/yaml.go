package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlDoc struct {
	Sitters     []Sitter     `yaml:"sitters"`
	PulseEvents []PulseEvent `yaml:"pulse_events"`
}

// ReadYAML decodes a catalog document. Unknown fields are rejected; tier names
// are accepted in any case and stored in their catalog spelling.
func ReadYAML(r io.Reader) (Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc yamlDoc
	if err := dec.Decode(&doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog yaml: %w", err)
	}
	for i := range doc.Sitters {
		doc.Sitters[i].Tier = doc.Sitters[i].Tier.Canonical()
	}
	return Catalog{Sitters: doc.Sitters, Events: doc.PulseEvents}, nil
}

// WriteYAML encodes c in the format ReadYAML accepts.
func WriteYAML(w io.Writer, c Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDoc{Sitters: c.Sitters, PulseEvents: c.Events}); err != nil {
		return fmt.Errorf("encode catalog yaml: %w", err)
	}
	return enc.Close()
}

// YAMLFile is a Source backed by a YAML document on disk. The file is read on
// every call; callers load once through Load.
type YAMLFile struct {
	Path string
}

func (f YAMLFile) read() (Catalog, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog %s: %w", f.Path, err)
	}
	defer fh.Close()
	return ReadYAML(fh)
}

func (f YAMLFile) Sitters(context.Context) ([]Sitter, error) {
	c, err := f.read()
	if err != nil {
		return nil, err
	}
	return c.Sitters, nil
}

func (f YAMLFile) PulseEvents(context.Context) ([]PulseEvent, error) {
	c, err := f.read()
	if err != nil {
		return nil, err
	}
	return c.Events, nil
}
