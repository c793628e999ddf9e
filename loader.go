package keybind

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// bindingConfig is the on-disk shape of one binding. Keys accepts either
// a single string or an array of strings.
type bindingConfig struct {
	Action string `json:"action" toml:"action"`
	Keys   any    `json:"keys" toml:"keys"`
}

// bindingsFile is the on-disk shape of a bindings file:
//
//	TOML                        JSON
//	[[binding]]                 {"bindings": [
//	action = "zoom-in"            {"action": "zoom-in", "keys": "ctrl+="},
//	keys = "ctrl+="               {"action": "quit",
//	[[binding]]                    "keys": ["mod+q", "alt+q"]}
//	action = "quit"             ]}
//	keys = ["mod+q", "alt+q"]
type bindingsFile struct {
	Bindings []bindingConfig `json:"bindings" toml:"binding"`
}

// LoadFile loads bindings from a TOML or JSON file, chosen by extension.
func LoadFile(path string) ([]Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bindings file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported bindings file %s: want .toml or .json", path)
	}
}

// LoadTOML loads bindings from TOML.
func LoadTOML(r io.Reader) ([]Binding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}

	var cfg bindingsFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}
	return cfg.toBindings()
}

// LoadJSON loads bindings from JSON.
func LoadJSON(r io.Reader) ([]Binding, error) {
	var cfg bindingsFile
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}
	return cfg.toBindings()
}

func (f bindingsFile) toBindings() ([]Binding, error) {
	bindings := make([]Binding, 0, len(f.Bindings))

	for i, bc := range f.Bindings {
		keys, err := normalizeKeys(bc.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, bc.Action, err)
		}

		b := Binding{Action: bc.Action, Keys: keys}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		bindings = append(bindings, b)
	}

	return bindings, nil
}

// normalizeKeys converts the string-or-array union into []string.
func normalizeKeys(v any) ([]string, error) {
	switch keys := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{keys}, nil
	case []string:
		return keys, nil
	case []any:
		out := make([]string, 0, len(keys))
		for _, item := range keys {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("keys must be a string or array of strings, got element %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("keys must be a string or array of strings, got %T", v)
	}
}
