package expand

import (
	"strings"
	"testing"
)

func TestLua_VariableAccess(t *testing.T) {
	eval := Lua(map[string]any{"idx": "2", "user": "ann"})
	out, err := eval("idx")
	if err != nil || out != "2" {
		t.Fatalf("out = %q, %v", out, err)
	}
	out, err = eval(`user .. "-suffix"`)
	if err != nil || out != "ann-suffix" {
		t.Fatalf("out = %q, %v", out, err)
	}
}

func TestLua_NumberFormatting(t *testing.T) {
	eval := Lua(nil)
	out, err := eval("1 + 2")
	if err != nil || out != "3" {
		t.Fatalf("out = %q, %v", out, err)
	}
	out, err = eval("5 / 2")
	if err != nil || out != "2.5" {
		t.Fatalf("out = %q, %v", out, err)
	}
}

func TestLua_BadExpression(t *testing.T) {
	eval := Lua(nil)
	if _, err := eval("((("); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestLua_NilResultIsError(t *testing.T) {
	eval := Lua(nil)
	_, err := eval("nothing_defined")
	if err == nil || !strings.Contains(err.Error(), "no value") {
		t.Fatalf("err = %v", err)
	}
}

func TestLua_TableResultIsError(t *testing.T) {
	eval := Lua(nil)
	if _, err := eval("{1,2}"); err == nil {
		t.Fatalf("expected scalar-only error")
	}
}

func TestLua_RenderIntegration(t *testing.T) {
	out, err := Render("$.users[%{idx - 1}].name", Lua(map[string]any{"idx": 3}), nil)
	if err != nil || out != "$.users[2].name" {
		t.Fatalf("out = %q, %v", out, err)
	}
}
