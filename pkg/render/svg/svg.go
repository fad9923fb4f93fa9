package svg

import (
	"bytes"
	"fmt"

	"github.com/splitkeys/splitviz/pkg/keymap"
	"github.com/splitkeys/splitviz/pkg/layout"
)

// Option configures document rendering.
type Option func(*renderer)

type renderer struct {
	showCombos bool
	showLegend bool
}

// WithoutCombos disables the combo overlay block.
func WithoutCombos() Option { return func(r *renderer) { r.showCombos = false } }

// WithoutLegend disables the legend block. The canvas keeps its full height
// so layer positions are independent of this option.
func WithoutLegend() Option { return func(r *renderer) { r.showLegend = false } }

// Height returns the canvas height for a declared layer count. It grows by
// one band per layer and depends only on the layer count, not on key labels
// or colors.
func Height(declaredLayers int) float64 {
	return topMargin + float64(declaredLayers)*layerBandHeight + legendHeight
}

// Render assembles the complete SVG document for a keymap.
//
// Layer bands render top-to-bottom in index order; the combo overlays draw
// once, on layer 0's band, since layer 0 supplies the physical reference
// coordinates. The grid must be the same instance the caller uses elsewhere
// so all consumers agree on geometry.
//
// Render validates the keymap shape first and resolves all combo references
// before emitting anything; on any failure it returns a nil document.
func Render(km *keymap.Keymap, grid *layout.Grid, opts ...Option) ([]byte, error) {
	r := renderer{showCombos: true, showLegend: true}
	for _, opt := range opts {
		opt(&r)
	}

	if err := km.Validate(layout.Rows, layout.Cols); err != nil {
		return nil, err
	}

	var overlays []comboOverlay
	if r.showCombos && len(km.Layers) > 0 {
		index := grid.TokenIndex(km.Layers[0].Rows)
		var err error
		overlays, err = layoutCombos(km.Combos, index)
		if err != nil {
			return nil, err
		}
	}

	width, height := canvasWidth, Height(km.DeclaredLayers)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %.0f %.0f\" width=\"%.0f\" height=\"%.0f\">\n",
		width, height, width, height)
	buf.WriteString("  <defs>\n    <style>\n")
	buf.WriteString(stylesheet)
	buf.WriteString("\n    </style>\n  </defs>\n\n")

	for idx := range km.DeclaredLayers {
		if idx >= len(km.Layers) {
			renderPlaceholderBand(&buf, km, idx)
			continue
		}

		var bandOverlays func(*bytes.Buffer) error
		if idx == 0 && len(overlays) > 0 {
			bandOverlays = func(b *bytes.Buffer) error {
				renderComboOverlays(b, overlays)
				return nil
			}
		}
		if err := renderLayerBand(&buf, km, km.Layers[idx], grid, bandOverlays); err != nil {
			return nil, err
		}
	}

	if r.showLegend {
		renderLegend(&buf, km, grid, topMargin+float64(km.DeclaredLayers)*layerBandHeight)
	}

	renderFooter(&buf, km, width, height)
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}

// renderFooter writes the attribution line in the bottom-right corner.
func renderFooter(buf *bytes.Buffer, km *keymap.Keymap, width, height float64) {
	source := "keyboard.toml"
	if km.Vial != nil {
		source = "keyboard.toml and vial.json"
	}
	buf.WriteString("  <!-- Footer -->\n")
	fmt.Fprintf(buf, "  <text x=\"%.0f\" y=\"%.0f\" class=\"legend\" text-anchor=\"end\">Generated from %s</text>\n",
		width-50, height-50, source)
}
