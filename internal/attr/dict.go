package attr

import (
	"fmt"
	"strings"
)

// Definition describes one attribute: its canonical name, declared
// scalar type and default write operator. Names compare
// case-insensitively throughout.
type Definition struct {
	Name string
	Type Type
	Op   Op
}

// Dict is an immutable attribute dictionary built once from config.
type Dict struct {
	defs   []Definition
	byName map[string]*Definition
}

// NewDict builds a dictionary, rejecting duplicate names.
func NewDict(defs []Definition) (*Dict, error) {
	d := &Dict{defs: defs, byName: make(map[string]*Definition, len(defs))}
	for i := range d.defs {
		def := &d.defs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("attribute definition %d has no name", i+1)
		}
		key := strings.ToLower(def.Name)
		if _, dup := d.byName[key]; dup {
			return nil, fmt.Errorf("duplicate attribute definition %q", def.Name)
		}
		d.byName[key] = def
	}
	return d, nil
}

// Lookup resolves an attribute name case-insensitively.
func (d *Dict) Lookup(name string) (*Definition, bool) {
	def, ok := d.byName[strings.ToLower(name)]
	return def, ok
}

// Len returns the number of definitions.
func (d *Dict) Len() int { return len(d.defs) }
