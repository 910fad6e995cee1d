package attr

import (
	"strings"
	"testing"
)

func testDefs() []Definition {
	return []Definition{
		{Name: "User-Name", Type: TypeString, Op: OpSet},
		{Name: "NAS-Port", Type: TypeUint32, Op: OpEqual},
		{Name: "Acct-Input-Octets", Type: TypeUint64, Op: OpSet},
	}
}

func TestNewDict_LookupCaseInsensitive(t *testing.T) {
	d, err := NewDict(testDefs())
	if err != nil {
		t.Fatalf("NewDict: %v", err)
	}
	def, ok := d.Lookup("user-name")
	if !ok || def.Name != "User-Name" {
		t.Fatalf("lookup user-name = %v, %v", def, ok)
	}
	if _, ok := d.Lookup("nope"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestNewDict_RejectsDuplicates(t *testing.T) {
	defs := append(testDefs(), Definition{Name: "USER-NAME", Type: TypeString})
	if _, err := NewDict(defs); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestParseTypeAndOp(t *testing.T) {
	for name, want := range map[string]Type{
		"string": TypeString, "bool": TypeBool, "int32": TypeInt32,
		"int64": TypeInt64, "uint32": TypeUint32, "uint64": TypeUint64,
		"float64": TypeFloat64,
	} {
		got, err := ParseType(name)
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseType("blob"); err == nil {
		t.Fatalf("expected type error")
	}
	op, err := ParseOp(":=")
	if err != nil || op != OpSet {
		t.Fatalf("ParseOp(:=) = %v, %v", op, err)
	}
	if _, err := ParseOp("=~"); err == nil {
		t.Fatalf("expected op error")
	}
}

func TestParseInto_Range(t *testing.T) {
	if _, err := ParseInto(TypeInt32, "2147483648"); err == nil {
		t.Fatalf("int32 overflow accepted")
	}
	v, err := ParseInto(TypeInt64, "-9223372036854775808")
	if err != nil {
		t.Fatalf("int64 min rejected: %v", err)
	}
	if v.Interface() != int64(-9223372036854775808) {
		t.Fatalf("int64 min = %v", v.Interface())
	}
}

func TestFromGo(t *testing.T) {
	v, err := FromGo(TypeUint32, 7)
	if err != nil || v.String() != "7" {
		t.Fatalf("FromGo int = %v, %v", v, err)
	}
	if _, err := FromGo(TypeUint32, 2.5); err == nil || !strings.Contains(err.Error(), "truncate") {
		t.Fatalf("FromGo float truncation = %v", err)
	}
	v, err = FromGo(TypeString, "abc")
	if err != nil || v.String() != "abc" {
		t.Fatalf("FromGo string = %v, %v", v, err)
	}
	if _, err := FromGo(TypeBool, "true"); err == nil {
		t.Fatalf("FromGo bool from string accepted")
	}
}

func TestList_NamedAndWithoutNamed(t *testing.T) {
	l := List{
		{Name: "a", Value: StringValue("1")},
		{Name: "b", Value: StringValue("2")},
		{Name: "A", Value: StringValue("3")},
	}
	named := l.Named("a")
	if len(named) != 2 || named[0].Value.String() != "1" || named[1].Value.String() != "3" {
		t.Fatalf("Named = %v", named)
	}
	rest := l.WithoutNamed("A")
	if len(rest) != 1 || rest[0].Name != "b" {
		t.Fatalf("WithoutNamed = %v", rest)
	}
	if len(l) != 3 {
		t.Fatalf("receiver mutated")
	}
}
