package jpath

import "testing"

func TestParse_Canonical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a", "$.a"},
		{"$.a", "$.a"},
		{"a.b.c", "$.a.b.c"},
		{"a[0]", "$.a[0]"},
		{"a[-1]", "$.a[-1]"},
		{"a[*]", "$.a[*]"},
		{"a.*", "$.a[*]"},
		{"a[1:3]", "$.a[1:3]"},
		{"a[:2]", "$.a[:2]"},
		{"a[-2:]", "$.a[-2:]"},
		{"a..b", "$.a..b"},
		{"$..b", "$..b"},
		{"a..[*]", "$.a..[*]"},
		{`a.we\ ird`, `$.a.we\ ird`},
	}
	for _, c := range cases {
		p, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got := p.String(); got != c.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in     string
		offset int
	}{
		{"", 0},
		{"$", 1},
		{".", 1},
		{"a..[bad", 4},
		{"a[", 2},
		{"a[]", 2},
		{"a[1", 3},
		{"a[1:2", 5},
		{"a b", 1},
		{"a.", 2},
		{"a...b", 3},
		{`a.b\`, 3},
		{"a[x]", 2},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", c.in)
		}
		ce, ok := err.(*CompileError)
		if !ok {
			t.Fatalf("Parse(%q): error type %T", c.in, err)
		}
		if ce.Offset != c.offset {
			t.Fatalf("Parse(%q): offset = %d, want %d (%s)", c.in, ce.Offset, c.offset, ce.Message)
		}
	}
}

func TestParse_NoPartialAST(t *testing.T) {
	p, err := Parse("a.b[")
	if err == nil {
		t.Fatalf("expected error")
	}
	if p != nil {
		t.Fatalf("failed compile must not return a path")
	}
}

func TestValidate_SuccessFormat(t *testing.T) {
	got := Validate("a[*].b")
	if got != "6:$.a[*].b" {
		t.Fatalf("Validate = %q", got)
	}
}

func TestValidate_FailureReproducible(t *testing.T) {
	in := "a..[bad"
	first := Validate(in)
	second := Validate(in)
	if first != second {
		t.Fatalf("validate not reproducible: %q vs %q", first, second)
	}
	if first != "4:expected array index, slice or wildcard" {
		t.Fatalf("Validate(%q) = %q", in, first)
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	raw := `odd.key[0] with *stuff*`
	p, err := Parse("$." + Escape(raw))
	if err != nil {
		t.Fatalf("escaped key did not parse: %v", err)
	}
	if len(p.steps) != 1 || p.steps[0].kind != stepKey || p.steps[0].key != raw {
		t.Fatalf("escaped key parsed as %+v", p.steps)
	}
}
