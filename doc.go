// Package keybind maps named application actions to keyboard shortcuts
// and fans detected shortcuts out to subscribed handler functions.
//
// Applications declare bindings (action name + key sequences), typically
// in configuration, and attach or detach handlers to action names at
// runtime. The shortcut-detection engine is an injected collaborator:
// anything with a Bind method can drive a Registry, which keeps the
// registry testable and allows multiple independent registries. A
// reference engine built on tcell lives in engine/tcellengine.
//
// # Usage
//
//	bindings := []keybind.Binding{
//	    keybind.NewBinding("zoom-in", "ctrl+="),
//	    keybind.NewBinding("quit", "mod+q", "alt+q"),
//	}
//
//	reg, err := keybind.New(engine, bindings)
//	if err != nil {
//	    return err
//	}
//	defer reg.Close()
//
//	reg.AddHandler("zoom-in", func(action string) {
//	    view.Zoom(+1)
//	})
//
// When the engine detects "ctrl+=", every handler registered for
// "zoom-in" runs once, in registration order, with the action name as
// its argument. Actions with no handlers dispatch to nothing; that is
// not an error.
//
// # Handler isolation
//
// Each handler invocation is independently recover-wrapped, so one
// panicking handler cannot block its siblings. Recovered panics are
// reported through the optional WithPanicHandler hook.
//
// # Configuration
//
// LoadFile reads binding lists from TOML or JSON, accepting a single
// string or an array of strings for each binding's keys. WatchFile
// delivers reloaded binding lists when the file changes.
package keybind
