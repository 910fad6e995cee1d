package mapper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
)

func runDecode(t *testing.T, entries []Entry, doc string) Result {
	t.Helper()
	dict := testDict(t)
	plan, err := BuildPlan(entries, dict)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	engine := Engine{Dict: dict}
	return engine.Run(plan, entries, doc)
}

func pairStrings(pairs attr.List) []string {
	var out []string
	for _, p := range pairs {
		out = append(out, p.Name+p.Op.String()+p.Value.String())
	}
	return out
}

func TestRun_MultiValueFanOut(t *testing.T) {
	entries := []Entry{{Attribute: "NAS-Port", Op: attr.OpAdd, Source: SourceFromString("a[*]")}}
	res := runDecode(t, entries, `{"a":[1,2,3]}`)
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %s (%s)", res.Outcome, res.Reason)
	}
	got := strings.Join(pairStrings(res.Pairs), " ")
	if got != "NAS-Port+=1 NAS-Port+=2 NAS-Port+=3" {
		t.Fatalf("pairs = %s", got)
	}
}

func TestRun_ZeroMatchIsNoMatch(t *testing.T) {
	entries := []Entry{{Attribute: "User-Name", Source: SourceFromString("missing.field")}}
	res := runDecode(t, entries, `{"a":1}`)
	if res.Outcome != OutcomeNoMatch {
		t.Fatalf("outcome = %s, want nomatch (%s)", res.Outcome, res.Reason)
	}
	if res.Reason != "" {
		t.Fatalf("nomatch must not carry a failure reason: %q", res.Reason)
	}
}

func TestRun_ConcatenatedFragments(t *testing.T) {
	entries := []Entry{{Attribute: "NAS-Port", Op: attr.OpSet, Source: SourceFromString("a")}}
	doc := JoinFragments([]string{`{"a"`, `:1}`})
	res := runDecode(t, entries, doc)
	if res.Outcome != OutcomeUpdated || len(res.Pairs) != 1 {
		t.Fatalf("res = %+v", res)
	}
	if res.Pairs[0].Value.String() != "1" {
		t.Fatalf("value = %s", res.Pairs[0].Value.String())
	}
}

func TestRun_EmptyInputFails(t *testing.T) {
	entries := []Entry{{Attribute: "User-Name", Source: SourceFromString("a")}}
	res := runDecode(t, entries, "")
	if res.Outcome != OutcomeFailed || !strings.Contains(res.Reason, "length") {
		t.Fatalf("res = %+v", res)
	}
}

func TestRun_ParseFailureFails(t *testing.T) {
	entries := []Entry{{Attribute: "User-Name", Source: SourceFromString("a")}}
	res := runDecode(t, entries, `{"a": [1,`)
	if res.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %s", res.Outcome)
	}
	if !strings.Contains(res.Reason, "offset") {
		t.Fatalf("reason has no offset diagnostic: %q", res.Reason)
	}
}

func TestRun_BadLeafAbsorbed(t *testing.T) {
	// The object element cannot convert to uint32; its siblings still do.
	entries := []Entry{{Attribute: "NAS-Port", Op: attr.OpAdd, Source: SourceFromString("a[*]")}}
	res := runDecode(t, entries, `{"a":[1,{"x":2},3]}`)
	if res.Outcome != OutcomeUpdated {
		t.Fatalf("outcome = %s (%s)", res.Outcome, res.Reason)
	}
	got := strings.Join(pairStrings(res.Pairs), " ")
	if got != "NAS-Port+=1 NAS-Port+=3" {
		t.Fatalf("pairs = %s", got)
	}
}

func TestRun_DynamicTemplateExpansion(t *testing.T) {
	dict := testDict(t)
	entries := []Entry{{Attribute: "User-Name", Op: attr.OpSet, Source: SourceFromString("$.users[%{idx}].name")}}
	plan, err := BuildPlan(entries, dict)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	engine := Engine{Dict: dict, Expand: func(expr string) (string, error) {
		if expr != "idx" {
			return "", fmt.Errorf("unexpected expression %q", expr)
		}
		return "1", nil
	}}
	res := engine.Run(plan, entries, `{"users":[{"name":"ann"},{"name":"bob"}]}`)
	if res.Outcome != OutcomeUpdated || len(res.Pairs) != 1 {
		t.Fatalf("res = %+v", res)
	}
	if res.Pairs[0].Value.String() != "bob" {
		t.Fatalf("value = %s", res.Pairs[0].Value.String())
	}
}

func TestRun_DynamicExpansionEscaped(t *testing.T) {
	// Expanded values must read as literal member names, not syntax.
	dict := testDict(t)
	entries := []Entry{{Attribute: "User-Name", Op: attr.OpSet, Source: SourceFromString("$.%{key}")}}
	plan, err := BuildPlan(entries, dict)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	engine := Engine{Dict: dict, Expand: func(string) (string, error) { return "odd.key", nil }}
	res := engine.Run(plan, entries, `{"odd.key":"v","odd":{"key":"wrong"}}`)
	if res.Outcome != OutcomeUpdated || len(res.Pairs) != 1 {
		t.Fatalf("res = %+v", res)
	}
	if res.Pairs[0].Value.String() != "v" {
		t.Fatalf("value = %s", res.Pairs[0].Value.String())
	}
}

func TestRun_ExpansionFailureFails(t *testing.T) {
	dict := testDict(t)
	entries := []Entry{{Attribute: "User-Name", Source: SourceFromString("$.%{boom}")}}
	plan, err := BuildPlan(entries, dict)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	engine := Engine{Dict: dict, Expand: func(string) (string, error) {
		return "", fmt.Errorf("no such variable")
	}}
	res := engine.Run(plan, entries, `{"a":1}`)
	if res.Outcome != OutcomeFailed || !strings.Contains(res.Reason, "no such variable") {
		t.Fatalf("res = %+v", res)
	}
}

func TestRun_EntryOrderPreserved(t *testing.T) {
	entries := []Entry{
		{Attribute: "User-Name", Op: attr.OpSet, Source: SourceFromString("$.name")},
		{Attribute: "NAS-Port", Op: attr.OpEqual, Source: SourceFromString("$.port")},
	}
	res := runDecode(t, entries, `{"port":9,"name":"ann"}`)
	got := strings.Join(pairStrings(res.Pairs), " ")
	if got != "User-Name:=ann NAS-Port=9" {
		t.Fatalf("pairs = %s", got)
	}
}

func TestRun_PlanReusableAcrossRuns(t *testing.T) {
	dict := testDict(t)
	entries := []Entry{{Attribute: "NAS-Port", Op: attr.OpSet, Source: SourceFromString("a")}}
	plan, err := BuildPlan(entries, dict)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	engine := Engine{Dict: dict}
	for i := 0; i < 3; i++ {
		res := engine.Run(plan, entries, fmt.Sprintf(`{"a":%d}`, i))
		if res.Outcome != OutcomeUpdated || res.Pairs[0].Value.String() != fmt.Sprintf("%d", i) {
			t.Fatalf("run %d: %+v", i, res)
		}
	}
}
