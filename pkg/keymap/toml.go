package keymap

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/splitkeys/splitviz/pkg/errors"
)

// config mirrors the keyboard.toml structure for decoding.
type config struct {
	Keyboard struct {
		Name string `toml:"name"`
	} `toml:"keyboard"`
	Layout struct {
		Layers int          `toml:"layers"`
		Keymap [][][]string `toml:"keymap"`
	} `toml:"layout"`
	Behavior struct {
		Combo struct {
			Combos []Combo `toml:"combos"`
		} `toml:"combo"`
	} `toml:"behavior"`
}

// Load reads and decodes a keyboard.toml file at path.
//
// Beyond the TOML data itself, Load scans the raw file for the layer-name
// comments preceding each layer array and attaches them to the resulting
// layers. Missing files map to ErrCodeFileNotFound, malformed TOML to
// ErrCodeInvalidConfig.
func Load(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes keyboard.toml content into a Keymap.
func Parse(data []byte) (*Keymap, error) {
	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode keyboard config")
	}

	names := extractLayerNames(data)

	km := &Keymap{
		Name:           cfg.Keyboard.Name,
		DeclaredLayers: cfg.Layout.Layers,
		Combos:         cfg.Behavior.Combo.Combos,
	}
	if km.DeclaredLayers == 0 {
		km.DeclaredLayers = len(cfg.Layout.Keymap)
	}

	for i, rows := range cfg.Layout.Keymap {
		layer := Layer{Index: i, Rows: rows}
		if i < len(names) {
			layer.Name = names[i]
		}
		km.Layers = append(km.Layers, layer)
	}

	return km, nil
}

// extractLayerNames recovers layer names from comments inside the keymap
// array. A single-# comment immediately preceding a line that opens a layer
// array ("[") names that layer; ## comments are ignored. Names are returned
// in layer order.
func extractLayerNames(data []byte) []string {
	var (
		names       []string
		inKeymap    bool
		lastComment string
	)

	for line := range strings.Lines(string(data)) {
		stripped := strings.TrimSpace(line)

		if !inKeymap {
			if strings.Contains(stripped, "keymap = [") {
				inKeymap = true
			}
			continue
		}
		if stripped == "]" {
			break
		}

		switch {
		case strings.HasPrefix(stripped, "#") && !strings.HasPrefix(stripped, "##"):
			lastComment = strings.TrimSpace(stripped[1:])
		case stripped == "[":
			// A bare "[" opens the next layer array; rows are written inline.
			// Unnamed layers keep their slot so later names stay aligned.
			names = append(names, lastComment)
			lastComment = ""
		}
	}

	return names
}
