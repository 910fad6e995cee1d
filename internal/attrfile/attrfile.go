// Package attrfile reads attribute collections from YAML files: an
// ordered list of {name, value} entries, repeated names allowed.
package attrfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
)

type entry struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
	Op    string `yaml:"op,omitempty"`
}

// Read loads an ordered attribute collection, resolving each name and
// value against the dictionary.
func Read(path string, dict *attr.Dict) (attr.List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}
	return Unmarshal(data, dict)
}

// Unmarshal decodes an attribute collection from YAML bytes.
func Unmarshal(data []byte, dict *attr.Dict) (attr.List, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid attributes file: %v", err)
	}
	var out attr.List
	for i, e := range entries {
		def, ok := dict.Lookup(e.Name)
		if !ok {
			return nil, fmt.Errorf("attributes entry %d: unknown attribute %q", i+1, e.Name)
		}
		v, err := attr.FromGo(def.Type, e.Value)
		if err != nil {
			return nil, fmt.Errorf("attributes entry %d (%s): %v", i+1, e.Name, err)
		}
		op := def.Op
		if e.Op != "" {
			op, err = attr.ParseOp(e.Op)
			if err != nil {
				return nil, fmt.Errorf("attributes entry %d (%s): %v", i+1, e.Name, err)
			}
		}
		out = append(out, attr.Pair{Name: def.Name, Op: op, Value: v})
	}
	return out, nil
}

// Marshal renders an attribute collection back to YAML, preserving
// order.
func Marshal(list attr.List) ([]byte, error) {
	entries := make([]entry, 0, len(list))
	for _, p := range list {
		entries = append(entries, entry{Name: p.Name, Value: p.Value.Interface(), Op: p.Op.String()})
	}
	return yaml.Marshal(entries)
}
