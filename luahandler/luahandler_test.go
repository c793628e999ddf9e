package luahandler

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind"
)

func TestLuaHandlerReceivesAction(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	script := `
		calls = {}
		function on_action(action)
			calls[#calls + 1] = action
		end
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	handler, err := Global(L, "on_action", nil)
	if err != nil {
		t.Fatalf("Global() error = %v", err)
	}

	handler("zoom-in")
	handler("quit")

	calls, ok := L.GetGlobal("calls").(*lua.LTable)
	if !ok {
		t.Fatal("calls global is not a table")
	}
	if calls.Len() != 2 {
		t.Fatalf("len(calls) = %d, want 2", calls.Len())
	}
	if got := calls.RawGetInt(1); got != lua.LString("zoom-in") {
		t.Errorf("calls[1] = %v, want zoom-in", got)
	}
	if got := calls.RawGetInt(2); got != lua.LString("quit") {
		t.Errorf("calls[2] = %v, want quit", got)
	}
}

func TestLuaErrorGoesToCallback(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(`function boom() error("nope") end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	var gotAction string
	var gotErr error
	handler, err := Global(L, "boom", func(action string, err error) {
		gotAction = action
		gotErr = err
	})
	if err != nil {
		t.Fatalf("Global() error = %v", err)
	}

	// Must not panic even though the Lua function errors
	handler("save")

	if gotAction != "save" {
		t.Errorf("error callback action = %q, want save", gotAction)
	}
	if gotErr == nil {
		t.Error("error callback err = nil, want error")
	}
}

func TestGlobalNotAFunction(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(`not_fn = 42`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	if _, err := Global(L, "not_fn", nil); err == nil {
		t.Error("Global(non-function) error = nil, want error")
	}
	if _, err := Global(L, "missing", nil); err == nil {
		t.Error("Global(missing) error = nil, want error")
	}
}

func TestLuaHandlerWithRegistry(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	script := `
		last = ""
		function record(action)
			last = action
		end
	`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	handler, err := Global(L, "record", nil)
	if err != nil {
		t.Fatalf("Global() error = %v", err)
	}

	reg, err := keybind.New(stubBinder{}, []keybind.Binding{
		keybind.NewBinding("zoom-in", "ctrl+="),
	})
	if err != nil {
		t.Fatalf("keybind.New() error = %v", err)
	}
	defer reg.Close()

	if err := reg.AddHandler("zoom-in", handler); err != nil {
		t.Fatalf("AddHandler() error = %v", err)
	}
	reg.Dispatch("zoom-in")

	if got := L.GetGlobal("last"); got != lua.LString("zoom-in") {
		t.Errorf("last = %v, want zoom-in", got)
	}
}

type stubBinder struct{}

func (stubBinder) Bind([]string, func()) error { return nil }
