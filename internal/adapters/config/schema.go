package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// subflakeDTO is one unit of a CI variant as written in om.yaml or the om attribute.
type subflakeDTO struct {
	Skip           bool               `yaml:"skip"`
	Dir            string             `yaml:"dir"`
	OverrideInputs orderedMap[string] `yaml:"overrideInputs"`
	Systems        *[]string          `yaml:"systems"`
	Steps          stepsDTO           `yaml:"steps"`
}

type stepsDTO struct {
	Lockfile   *toggleDTO                `yaml:"lockfile"`
	FlakeCheck *toggleDTO                `yaml:"flake-check"`
	Build      *toggleDTO                `yaml:"build"`
	Custom     orderedMap[customStepDTO] `yaml:"custom"`
}

type toggleDTO struct {
	Enable *bool `yaml:"enable"`
}

// customStepDTO is the tagged union of custom steps, discriminated by Type.
type customStepDTO struct {
	Type    string    `yaml:"type"`
	Name    string    `yaml:"name"`
	Args    []string  `yaml:"args"`
	Command []string  `yaml:"command"`
	Systems *[]string `yaml:"systems"`
}

// orderedMap decodes a YAML mapping while keeping its declaration order.
type orderedMap[T any] struct {
	keys   []string
	values map[string]T
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *orderedMap[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("expected a mapping"), "line", node.Line)
	}

	m.values = make(map[string]T, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value T
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		if _, dup := m.values[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.values[key] = value
	}
	return nil
}

// each calls fn for every entry in declaration order.
func (m orderedMap[T]) each(fn func(key string, value T) error) error {
	for _, k := range m.keys {
		if err := fn(k, m.values[k]); err != nil {
			return err
		}
	}
	return nil
}
