package keybind

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTOML(t *testing.T) {
	input := `
[[binding]]
action = "zoom-in"
keys = "ctrl+="

[[binding]]
action = "quit"
keys = ["mod+q", "alt+q"]
`

	bindings, err := LoadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadTOML() error = %v", err)
	}

	assertTestBindings(t, bindings)
}

func TestLoadJSON(t *testing.T) {
	input := `{
		"bindings": [
			{"action": "zoom-in", "keys": "ctrl+="},
			{"action": "quit", "keys": ["mod+q", "alt+q"]}
		]
	}`

	bindings, err := LoadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	assertTestBindings(t, bindings)
}

func assertTestBindings(t *testing.T, bindings []Binding) {
	t.Helper()

	if len(bindings) != 2 {
		t.Fatalf("len(bindings) = %d, want 2", len(bindings))
	}
	if bindings[0].Action != "zoom-in" {
		t.Errorf("bindings[0].Action = %q, want zoom-in", bindings[0].Action)
	}
	if len(bindings[0].Keys) != 1 || bindings[0].Keys[0] != "ctrl+=" {
		t.Errorf("bindings[0].Keys = %v, want [ctrl+=] (string form normalized)", bindings[0].Keys)
	}
	if bindings[1].Action != "quit" {
		t.Errorf("bindings[1].Action = %q, want quit", bindings[1].Action)
	}
	if len(bindings[1].Keys) != 2 || bindings[1].Keys[0] != "mod+q" || bindings[1].Keys[1] != "alt+q" {
		t.Errorf("bindings[1].Keys = %v, want [mod+q alt+q]", bindings[1].Keys)
	}
}

func TestLoadTOMLInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "malformed toml",
			input: `[[binding`,
		},
		{
			name: "missing action",
			input: `
[[binding]]
keys = "ctrl+s"
`,
		},
		{
			name: "missing keys",
			input: `
[[binding]]
action = "save"
`,
		},
		{
			name: "non-string key element",
			input: `
[[binding]]
action = "save"
keys = ["ctrl+s", 42]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTOML(strings.NewReader(tt.input)); err == nil {
				t.Error("LoadTOML() error = nil, want error")
			}
		})
	}
}

func TestLoadJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"bindings": [`},
		{"keys wrong type", `{"bindings": [{"action": "save", "keys": 42}]}`},
		{"empty action", `{"bindings": [{"action": "", "keys": "ctrl+s"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("LoadJSON() error = nil, want error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "bindings.toml")
	tomlData := "[[binding]]\naction = \"save\"\nkeys = \"ctrl+s\"\n"
	if err := os.WriteFile(tomlPath, []byte(tomlData), 0o644); err != nil {
		t.Fatal(err)
	}

	jsonPath := filepath.Join(dir, "bindings.json")
	jsonData := `{"bindings": [{"action": "save", "keys": "ctrl+s"}]}`
	if err := os.WriteFile(jsonPath, []byte(jsonData), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, jsonPath} {
		bindings, err := LoadFile(path)
		if err != nil {
			t.Errorf("LoadFile(%s) error = %v", path, err)
			continue
		}
		if len(bindings) != 1 || bindings[0].Action != "save" {
			t.Errorf("LoadFile(%s) = %v", path, bindings)
		}
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile("/nonexistent/bindings.toml"); err == nil {
		t.Error("LoadFile on missing file error = nil, want error")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile on unsupported extension error = nil, want error")
	}
}
