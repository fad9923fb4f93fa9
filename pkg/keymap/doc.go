// Package keymap loads and models split-keyboard firmware configurations.
//
// The primary input is a keyboard.toml file holding the keyboard name, the
// layer count, the per-layer key matrix, and the combo table:
//
//	[keyboard]
//	name = "corne"
//
//	[layout]
//	layers = 2
//	keymap = [
//	  # Base
//	  [
//	    ["tab", "q", "w", ...],
//	    ...
//	  ],
//	]
//
//	[behavior.combo]
//	combos = [
//	  { actions = ["q", "w"], output = "esc" },
//	]
//
// Layer names are not part of the TOML data model; by convention each layer
// array inside keymap is preceded by a single-# comment naming it, and the
// loader recovers those names with a line scan.
//
// A vial.json sidecar may supply the display name and matrix dimension hints;
// it is optional and only consulted for metadata the TOML does not carry.
package keymap
