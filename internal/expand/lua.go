package expand

import (
	"context"
	"fmt"
	"strconv"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const luaTimeout = 200 * time.Millisecond

// Lua returns an expansion capability backed by a sandboxed Lua
// interpreter. Each call runs the placeholder body as an expression
// with vars bound as globals. The sandbox opens only the base, string,
// table and math libraries and enforces a deadline.
func Lua(vars map[string]any) Func {
	return func(expr string) (string, error) {
		L := newSandboxState()
		defer L.Close()

		ctx, cancel := context.WithTimeout(context.Background(), luaTimeout)
		defer cancel()
		L.SetContext(ctx)

		for k, v := range vars {
			L.SetGlobal(k, toLValue(L, v))
		}

		fn, err := L.LoadString("return (" + expr + ")")
		if err != nil {
			return "", fmt.Errorf("bad expression: %v", err)
		}
		L.Push(fn)
		if err := L.PCall(0, 1, nil); err != nil {
			return "", fmt.Errorf("expression failed: %v", err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		return stringify(ret)
	}
}

func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  4096,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

func stringify(v lua.LValue) (string, error) {
	switch v.Type() {
	case lua.LTString:
		return v.String(), nil
	case lua.LTNumber:
		f := float64(v.(lua.LNumber))
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10), nil
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case lua.LTBool:
		return strconv.FormatBool(lua.LVAsBool(v)), nil
	case lua.LTNil:
		return "", fmt.Errorf("expression produced no value")
	}
	return "", fmt.Errorf("expression produced a %s, want a scalar", v.Type())
}

func toLValue(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(x)
	case string:
		return lua.LString(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case map[string]any:
		t := L.NewTable()
		for k, v2 := range x {
			t.RawSetString(k, toLValue(L, v2))
		}
		return t
	case []any:
		t := L.NewTable()
		for _, v2 := range x {
			t.Append(toLValue(L, v2))
		}
		return t
	default:
		return lua.LString(fmt.Sprintf("%v", x))
	}
}
