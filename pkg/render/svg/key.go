package svg

import (
	"bytes"
	"fmt"

	"github.com/splitkeys/splitviz/pkg/keymap"
	"github.com/splitkeys/splitviz/pkg/label"
	"github.com/splitkeys/splitviz/pkg/layout"
)

// renderLayerBand writes one layer's group: the title and every key of the
// grid, positioned via the shared grid geometry. The group is translated to
// the layer's vertical band; combo overlays for the base layer are appended
// by the caller before the group closes.
func renderLayerBand(buf *bytes.Buffer, km *keymap.Keymap, layer keymap.Layer, grid *layout.Grid, overlays func(*bytes.Buffer) error) error {
	name := km.LayerName(layer.Index)
	yOffset := bandOffset(layer.Index)

	fmt.Fprintf(buf, "  <!-- Layer %d: %s -->\n", layer.Index, Escape(name))
	fmt.Fprintf(buf, "  <g id=\"layer%d\" transform=\"translate(%.0f, %.0f)\">\n", layer.Index, layerOriginX, yOffset)
	fmt.Fprintf(buf, "    <text x=\"400\" y=\"0\" class=\"layer-title\">Layer %d: %s</text>\n\n", layer.Index, Escape(name))

	for row := range layout.Rows {
		for col := range layout.Cols {
			pos, ok := grid.At(row, col)
			if !ok {
				continue
			}
			renderKey(buf, pos, layer.Rows[row][col], layer.Index)
		}
	}

	if overlays != nil {
		if err := overlays(buf); err != nil {
			return err
		}
	}

	buf.WriteString("  </g>\n\n")
	return nil
}

// renderKey writes one key cap: a rounded rectangle filled with the layer
// color and the centered display label. Transparent keys render with a
// dashed border and a lighter fill regardless of layer.
func renderKey(buf *bytes.Buffer, pos layout.KeyPosition, token string, layerIdx int) {
	lbl := label.Format(token)

	if lbl.Transparent {
		fmt.Fprintf(buf, "    <rect x=\"%.0f\" y=\"%.0f\" width=\"%.0f\" height=\"%.0f\" rx=\"%.0f\" class=\"key-empty\"/>\n",
			pos.X, pos.Y, pos.W, pos.H, layout.CornerRadius)
		fmt.Fprintf(buf, "    <text x=\"%.0f\" y=\"%.0f\" class=\"empty-label\">%s</text>\n",
			pos.CenterX(), pos.Y+28, label.TransparentGlyph)
		return
	}

	fmt.Fprintf(buf, "    <rect x=\"%.0f\" y=\"%.0f\" width=\"%.0f\" height=\"%.0f\" rx=\"%.0f\" class=\"key\" style=\"fill: %s\"/>\n",
		pos.X, pos.Y, pos.W, pos.H, layout.CornerRadius, layerColor(layerIdx))

	fontClass := "key-text"
	if lbl.SmallFont {
		fontClass = "key-text key-small"
	}
	fmt.Fprintf(buf, "    <text x=\"%.0f\" y=\"%.0f\" class=\"%s\">%s</text>\n",
		pos.CenterX(), pos.Y+30, fontClass, Escape(lbl.Text))
}

// renderPlaceholderBand writes the band for a layer that is declared in the
// layout but has no key matrix in the keymap.
func renderPlaceholderBand(buf *bytes.Buffer, km *keymap.Keymap, idx int) {
	name := km.LayerName(idx)
	fmt.Fprintf(buf, "  <g id=\"layer%d\" transform=\"translate(%.0f, %.0f)\">\n", idx, layerOriginX, bandOffset(idx))
	fmt.Fprintf(buf, "    <text x=\"400\" y=\"0\" class=\"layer-title\">Layer %d: %s</text>\n", idx, Escape(name))
	buf.WriteString("    <text x=\"400\" y=\"150\" class=\"legend\" style=\"font-size: 18px;\">(Layer is defined but has no key mappings in keyboard.toml)</text>\n")
	buf.WriteString("  </g>\n\n")
}

// bandOffset returns the vertical origin of a layer's band.
func bandOffset(idx int) float64 {
	return topMargin + float64(idx)*layerBandHeight
}
