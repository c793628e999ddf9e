// Package main is a demo for the keybind library: it loads a bindings
// file, wires a tcell detection engine to a registry, and shows each
// dispatched action on screen.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/engine/tcellengine"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a TOML or JSON bindings file")
	flag.Parse()

	bindings := defaultBindings()
	if configPath != "" {
		loaded, err := keybind.LoadFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		bindings = loaded
	}

	engine, err := tcellengine.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	reg, err := keybind.New(engine, bindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer reg.Close()

	for _, b := range reg.Bindings() {
		if b.Action == "quit" {
			reg.AddHandler(b.Action, func(string) {
				engine.Close()
			})
			continue
		}
		reg.AddHandler(b.Action, func(action string) {
			drawStatus(engine.Screen(), action)
		})
	}

	if err := engine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// defaultBindings is used when no config file is given.
func defaultBindings() []keybind.Binding {
	return []keybind.Binding{
		keybind.NewBinding("zoom-in", "ctrl+="),
		keybind.NewBinding("zoom-out", "ctrl+-"),
		keybind.NewBinding("save", "ctrl+s"),
		keybind.NewBinding("top", "g g"),
		keybind.NewBinding("quit", "q", "ctrl+c"),
	}
}

// drawStatus shows the dispatched action. Handlers run on the engine's
// event goroutine, so drawing here is safe.
func drawStatus(screen tcell.Screen, action string) {
	screen.Clear()
	drawText(screen, 0, 0, "keybind demo - press a bound shortcut, quit with q")
	drawText(screen, 0, 2, "dispatched: "+action)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
