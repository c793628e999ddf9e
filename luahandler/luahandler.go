// Package luahandler adapts Lua functions as keybind handlers, letting
// scripted configurations subscribe to actions.
package luahandler

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keybind"
)

// ErrorFunc receives errors from failed Lua calls. It may be nil.
type ErrorFunc func(action string, err error)

// New wraps fn as a handler. Each dispatch calls fn with the action
// name as its single argument, using a protected call; Lua errors go to
// onError instead of propagating.
//
// The caller owns L. gopher-lua states are not safe for concurrent use,
// so all handlers sharing a state must dispatch from one goroutine —
// which is how detection engines deliver events anyway.
func New(L *lua.LState, fn *lua.LFunction, onError ErrorFunc) keybind.Handler {
	return func(action string) {
		err := L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, lua.LString(action))
		if err != nil && onError != nil {
			onError(action, fmt.Errorf("lua handler: %w", err))
		}
	}
}

// Global wraps the Lua global named name as a handler. It returns an
// error if the global is not a function.
func Global(L *lua.LState, name string, onError ErrorFunc) (keybind.Handler, error) {
	v := L.GetGlobal(name)
	fn, ok := v.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("global %q is %s, not a function", name, v.Type())
	}
	return New(L, fn, onError), nil
}
