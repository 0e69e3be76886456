// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load читает файл определений и проверяет его.
// Разделы, которых нет в файле, берутся из встроенного набора.
func Load(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return Parse(file)
}

// Parse разбирает YAML с определениями.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	fallback := Default()
	if len(lib.Targets) == 0 {
		lib.Targets = fallback.Targets
	}
	if len(lib.Bosses) == 0 {
		lib.Bosses = fallback.Bosses
	}
	if len(lib.Skins) == 0 {
		lib.Skins = fallback.Skins
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate проверяет, что каждую мишень можно пройти.
func (l *Library) Validate() error {
	var errs []error
	for i, t := range l.Targets {
		if err := t.validate(); err != nil {
			errs = append(errs, fmt.Errorf("targets[%d]: %w", i, err))
		}
	}
	for i, b := range l.Bosses {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("bosses[%d]: name is required", i))
		}
		if err := b.Target.validate(); err != nil {
			errs = append(errs, fmt.Errorf("bosses[%d] %s: %w", i, b.Name, err))
		}
	}
	seen := make(map[string]bool, len(l.Skins))
	for i, s := range l.Skins {
		if s.ID == "" || seen[s.ID] {
			errs = append(errs, fmt.Errorf("skins[%d]: missing or duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
	}
	return errors.Join(errs...)
}

func (t TargetDefinition) validate() error {
	if t.TotalKnife <= 0 {
		return fmt.Errorf("%s: total_knife must be positive, got %d", t.ID, t.TotalKnife)
	}
	if t.Rotation.ReverseEvery < 0 {
		return fmt.Errorf("%s: rotation.reverse_every must not be negative", t.ID)
	}
	if t.Color != "" {
		if _, err := t.Color.Parse(); err != nil {
			return fmt.Errorf("%s: %w", t.ID, err)
		}
	}
	return nil
}
