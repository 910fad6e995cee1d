package attr

import "fmt"

// Op is the write operator carried from a map entry onto produced pairs.
type Op int

const (
	OpEqual Op = iota // "=" set if not already present
	OpSet             // ":=" replace any existing value
	OpAdd             // "+=" append another value
)

var opNames = map[Op]string{
	OpEqual: "=",
	OpSet:   ":=",
	OpAdd:   "+=",
}

// ParseOp maps a config operator string to an Op.
func ParseOp(s string) (Op, error) {
	for op, n := range opNames {
		if n == s {
			return op, nil
		}
	}
	return OpEqual, fmt.Errorf("unknown write operator %q", s)
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return "="
}
