package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/hashicorp/go-multierror"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
	"github.com/flarebyte/seshat-papyrus/internal/docjson"
	"github.com/flarebyte/seshat-papyrus/internal/mapper"
)

// Config is the parsed and validated CUE configuration: the attribute
// dictionary plus optional decode and encode blocks.
type Config struct {
	Version string
	Dict    *attr.Dict
	Decode  *DecodeBlock
	Encode  *EncodeBlock
}

// DecodeBlock configures the decode direction: an ordered map-entry
// list and the lenient string-number mode.
type DecodeBlock struct {
	Entries []mapper.Entry
	Lenient bool
}

// EncodeBlock configures the encode direction: an ordered template
// list and the serializer format options.
type EncodeBlock struct {
	Templates []mapper.Template
	Format    docjson.Format
}

// Load reads a CUE config file and validates the full schema.
// Field-level problems accumulate so one pass reports them all.
func Load(path string) (*Config, error) {
	if filepath.Ext(path) != ".cue" {
		return nil, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	var problems *multierror.Error
	cfg := &Config{}

	if err := requireStringField(v, "configVersion"); err != nil {
		problems = multierror.Append(problems, err)
	} else {
		_ = v.LookupPath(cue.ParsePath("configVersion")).Decode(&cfg.Version)
	}

	defs, err := parseDictionary(v)
	if err != nil {
		problems = multierror.Append(problems, err)
	} else {
		cfg.Dict, err = attr.NewDict(defs)
		if err != nil {
			problems = multierror.Append(problems, err)
		}
	}

	if dv := v.LookupPath(cue.ParsePath("decode")); dv.Exists() {
		block, err := parseDecode(dv)
		if err != nil {
			problems = multierror.Append(problems, err)
		} else {
			cfg.Decode = block
		}
	}
	if ev := v.LookupPath(cue.ParsePath("encode")); ev.Exists() {
		block, err := parseEncode(ev)
		if err != nil {
			problems = multierror.Append(problems, err)
		} else {
			cfg.Encode = block
		}
	}

	if err := problems.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func parseDictionary(v cue.Value) ([]attr.Definition, error) {
	dv := v.LookupPath(cue.ParsePath("dictionary"))
	if !dv.Exists() {
		return nil, errors.New("missing required field: dictionary")
	}
	iter, err := dv.List()
	if err != nil {
		return nil, fmt.Errorf("dictionary must be a list: %v", err)
	}
	var problems *multierror.Error
	var defs []attr.Definition
	i := 0
	for iter.Next() {
		i++
		elem := iter.Value()
		def := attr.Definition{Op: attr.OpEqual}
		var name, typeName string
		if err := decodeStringField(elem, "name", &name, true); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("dictionary entry %d: %v", i, err))
			continue
		}
		if err := decodeStringField(elem, "type", &typeName, true); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("dictionary entry %d (%s): %v", i, name, err))
			continue
		}
		def.Name = name
		def.Type, err = attr.ParseType(typeName)
		if err != nil {
			problems = multierror.Append(problems, fmt.Errorf("dictionary entry %d (%s): %v", i, name, err))
			continue
		}
		var opName string
		if err := decodeStringField(elem, "op", &opName, false); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("dictionary entry %d (%s): %v", i, name, err))
			continue
		}
		if opName != "" {
			def.Op, err = attr.ParseOp(opName)
			if err != nil {
				problems = multierror.Append(problems, fmt.Errorf("dictionary entry %d (%s): %v", i, name, err))
				continue
			}
		}
		defs = append(defs, def)
	}
	if err := problems.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("dictionary must not be empty")
	}
	return defs, nil
}

func parseDecode(v cue.Value) (*DecodeBlock, error) {
	block := &DecodeBlock{}
	if lv := v.LookupPath(cue.ParsePath("lenientStrings")); lv.Exists() {
		if lv.Kind() != cue.BoolKind {
			return nil, errors.New("decode.lenientStrings must be a bool")
		}
		_ = lv.Decode(&block.Lenient)
	}
	mv := v.LookupPath(cue.ParsePath("maps"))
	if !mv.Exists() {
		return nil, errors.New("decode.maps is required")
	}
	iter, err := mv.List()
	if err != nil {
		return nil, fmt.Errorf("decode.maps must be a list: %v", err)
	}
	var problems *multierror.Error
	i := 0
	for iter.Next() {
		i++
		elem := iter.Value()
		var attribute, opName, path string
		if err := decodeStringField(elem, "attribute", &attribute, true); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("decode.maps entry %d: %v", i, err))
			continue
		}
		if err := decodeStringField(elem, "path", &path, true); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("decode.maps entry %d (%s): %v", i, attribute, err))
			continue
		}
		entry := mapper.Entry{Attribute: attribute, Source: mapper.SourceFromString(path)}
		if err := decodeStringField(elem, "op", &opName, false); err != nil {
			problems = multierror.Append(problems, fmt.Errorf("decode.maps entry %d (%s): %v", i, attribute, err))
			continue
		}
		if opName != "" {
			entry.Op, err = attr.ParseOp(opName)
			if err != nil {
				problems = multierror.Append(problems, fmt.Errorf("decode.maps entry %d (%s): %v", i, attribute, err))
				continue
			}
		}
		block.Entries = append(block.Entries, entry)
	}
	if err := problems.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(block.Entries) == 0 {
		return nil, errors.New("decode.maps must not be empty")
	}
	return block, nil
}

func parseEncode(v cue.Value) (*EncodeBlock, error) {
	block := &EncodeBlock{}
	var templates string
	if err := decodeStringField(v, "attributes", &templates, true); err != nil {
		return nil, fmt.Errorf("encode: %v", err)
	}
	parsed, err := mapper.ParseTemplates(templates)
	if err != nil {
		return nil, fmt.Errorf("encode.attributes: %w", err)
	}
	if len(parsed) == 0 {
		return nil, errors.New("encode.attributes must select at least one template")
	}
	block.Templates = parsed

	if fv := v.LookupPath(cue.ParsePath("format")); fv.Exists() {
		for _, f := range []struct {
			name string
			dst  *bool
		}{
			{"pretty", &block.Format.Pretty},
			{"groupRepeated", &block.Format.GroupRepeated},
			{"alwaysString", &block.Format.AlwaysString},
		} {
			bv := fv.LookupPath(cue.ParsePath(f.name))
			if !bv.Exists() {
				continue
			}
			if bv.Kind() != cue.BoolKind {
				return nil, fmt.Errorf("encode.format.%s must be a bool", f.name)
			}
			_ = bv.Decode(f.dst)
		}
	}
	return block, nil
}

func decodeStringField(v cue.Value, name string, dst *string, required bool) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		if required {
			return fmt.Errorf("missing required field: %s", name)
		}
		return nil
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return f.Decode(dst)
}
