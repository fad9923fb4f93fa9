package keymap

import "strconv"

// Layer is one complete mapping of actions over the physical key grid.
// All layers of a keymap share the same grid shape; the key at (row, col)
// refers to the same physical key on every layer.
type Layer struct {
	Index int        // 0-based layer index; layer 0 is the base layer
	Name  string     // Display name recovered from the keymap comments
	Rows  [][]string // Rows[r][c] is the raw key-action token at that cell
}

// Combo is a chord of two or more physical keys that produces one action
// when pressed together. Members reference keys by their raw layer-0 token,
// including the full MT(...) form when the physical key is a mod-tap.
type Combo struct {
	Actions []string `toml:"actions"` // Member key tokens, in declaration order
	Output  string   `toml:"output"`  // Resulting action token
	Layer   int      `toml:"layer"`   // Layer the combo is declared for
}

// Keymap is the fully loaded configuration handed to the render pipeline.
type Keymap struct {
	Name           string  // Keyboard display name
	DeclaredLayers int     // Layer count declared in [layout]; may exceed len(Layers)
	Layers         []Layer // Layers with key matrices, in index order
	Combos         []Combo // Combo table, in declaration order
	Vial           *Vial   // Optional vial.json metadata, nil when absent
}

// LayerName returns the display name for a layer index, falling back to the
// numeric index for layers without a named comment.
func (k *Keymap) LayerName(idx int) string {
	if idx >= 0 && idx < len(k.Layers) && k.Layers[idx].Name != "" {
		return k.Layers[idx].Name
	}
	return strconv.Itoa(idx)
}

// Vial holds the subset of a vial.json file used for display metadata.
type Vial struct {
	Name   string `json:"name"`
	Matrix struct {
		Rows int `json:"rows"`
		Cols int `json:"cols"`
	} `json:"matrix"`
}
