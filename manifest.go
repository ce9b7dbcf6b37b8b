package creational

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Manifest selects which built-in variants are registered, and how.
//
// Example:
//
//	vehicles:
//	  - kind: car
//	  - kind: bike
//	    strategies: [descriptor]
type Manifest struct {
	Vehicles []ManifestEntry `yaml:"vehicles"`
}

// ManifestEntry registers one kind. An empty Strategies list registers both a
// prototype and a descriptor.
type ManifestEntry struct {
	Kind       TypeKey  `yaml:"kind"`
	Strategies []string `yaml:"strategies,omitempty"`
}

// LoadManifest decodes a YAML manifest from r.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadManifestFile decodes the YAML manifest stored at path.
func LoadManifestFile(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest %q: %w", path, err)
	}
	defer file.Close()

	return LoadManifest(file)
}

// Validate checks every entry names a known kind and strategy.
func (m *Manifest) Validate() error {
	var errs []error
	for _, entry := range m.Vehicles {
		if !entry.Kind.IsValid() {
			errs = append(errs, UnknownTypeKeyError{Value: entry.Kind})
			continue
		}
		for _, s := range entry.Strategies {
			if s != StrategyPrototype && s != StrategyDescriptor {
				errs = append(errs, RegistrationError{
					Key:       entry.Kind,
					Operation: "decode",
					Cause:     fmt.Errorf("unsupported strategy %q", s),
				})
			}
		}
	}
	return errors.Join(errs...)
}

// Apply registers the selected variants on f.
func (m *Manifest) Apply(f *Factory) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for _, entry := range m.Vehicles {
		if entry.wants(StrategyPrototype) {
			prototype, err := prototypeFor(entry.Kind)
			if err != nil {
				return RegistrationError{Key: entry.Kind, Operation: "register", Cause: err}
			}
			f.Register(entry.Kind, prototype)
		}

		if entry.wants(StrategyDescriptor) {
			desc, err := descriptorFor(entry.Kind)
			if err != nil {
				return RegistrationError{Key: entry.Kind, Operation: "register-descriptor", Cause: err}
			}
			f.RegisterDescriptor(entry.Kind, desc)
		}
	}

	return nil
}

// UnmarshalYAML requires the kind to be present so an omitted field never
// defaults to the zero key. Unknown fields are rejected here because
// Node.Decode does not inherit the decoder's KnownFields setting.
func (e *ManifestEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch field := node.Content[i]; field.Value {
			case "kind", "strategies":
			default:
				return fmt.Errorf("line %d: field %s not found in manifest entry", field.Line, field.Value)
			}
		}
	}

	var raw struct {
		Kind       string   `yaml:"kind"`
		Strategies []string `yaml:"strategies"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	key, err := ParseTypeKey(raw.Kind)
	if err != nil {
		return err
	}

	e.Kind = key
	e.Strategies = raw.Strategies
	return nil
}

func (e ManifestEntry) wants(strategy string) bool {
	return len(e.Strategies) == 0 || slices.Contains(e.Strategies, strategy)
}
