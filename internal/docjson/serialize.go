package docjson

import (
	"encoding/json"
	"strings"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
)

// Format holds the recognized serialization options.
type Format struct {
	// Pretty enables indented multi-line output.
	Pretty bool
	// GroupRepeated collects repeated attribute names into one member
	// whose value is an array. Without it each pair becomes its own
	// member, preserving duplicates.
	GroupRepeated bool
	// AlwaysString emits every scalar as its string rendering instead
	// of its native JSON type.
	AlwaysString bool
}

// Serialize writes an ordered attribute collection as a JSON object.
// Member order follows the collection; grouped members sit at the
// position of the name's first occurrence.
func Serialize(pairs attr.List, f Format) string {
	type member struct {
		name   string
		values []attr.Value
	}
	var members []member
	if f.GroupRepeated {
		index := map[string]int{}
		for _, p := range pairs {
			key := strings.ToLower(p.Name)
			if i, ok := index[key]; ok {
				members[i].values = append(members[i].values, p.Value)
				continue
			}
			index[key] = len(members)
			members = append(members, member{name: p.Name, values: []attr.Value{p.Value}})
		}
	} else {
		for _, p := range pairs {
			members = append(members, member{name: p.Name, values: []attr.Value{p.Value}})
		}
	}

	var b strings.Builder
	nl, ind, sep := "", "", ":"
	if f.Pretty {
		nl, ind, sep = "\n", "  ", ": "
	}
	if len(members) == 0 {
		return "{}"
	}
	b.WriteString("{" + nl)
	for i, m := range members {
		b.WriteString(ind)
		b.WriteString(quoted(m.name))
		b.WriteString(sep)
		if f.GroupRepeated && len(m.values) > 1 {
			b.WriteString("[" + nl)
			for j, v := range m.values {
				b.WriteString(ind + ind)
				writeScalar(&b, v, f.AlwaysString)
				if j < len(m.values)-1 {
					b.WriteString(",")
				}
				b.WriteString(nl)
			}
			b.WriteString(ind + "]")
		} else {
			writeScalar(&b, m.values[0], f.AlwaysString)
		}
		if i < len(members)-1 {
			b.WriteString(",")
		}
		b.WriteString(nl)
	}
	b.WriteString("}")
	return b.String()
}

func writeScalar(b *strings.Builder, v attr.Value, alwaysString bool) {
	if alwaysString || v.Type() == attr.TypeString {
		b.WriteString(quoted(v.String()))
		return
	}
	b.WriteString(v.String())
}

func quoted(s string) string {
	return `"` + Quote(s) + `"`
}

// Quote escapes arbitrary text so it is safe as the body of a JSON
// string. Empty input maps to empty output.
func Quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil || len(b) < 2 {
		return ""
	}
	return string(b[1 : len(b)-1])
}
