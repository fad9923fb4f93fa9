package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/splitkeys/splitviz/pkg/keymap"
	"github.com/splitkeys/splitviz/pkg/layout"
)

// maxLegendCombos caps how many combos the legend lists.
const maxLegendCombos = 3

// renderLegend writes the legend block: keyboard metadata, the first few
// combos, a mod-tap explainer, a color swatch per layer, and the
// transparent-key swatch.
func renderLegend(buf *bytes.Buffer, km *keymap.Keymap, grid *layout.Grid, yOffset float64) {
	buf.WriteString("  <!-- Legend -->\n")
	fmt.Fprintf(buf, "  <g id=\"legend\" transform=\"translate(%.0f, %.0f)\">\n", layerOriginX, yOffset)
	buf.WriteString("    <text x=\"0\" y=\"0\" class=\"layer-title\">Legend &amp; Info</text>\n\n")

	total := grid.Count()
	fmt.Fprintf(buf, "    <text x=\"0\" y=\"40\" class=\"legend\">• Keyboard: %s (Split 3×6+3 layout)</text>\n", Escape(km.Name))
	fmt.Fprintf(buf, "    <text x=\"0\" y=\"65\" class=\"legend\">• Total Keys: %d (%d per side)</text>\n", total, total/2)

	y := 90.0
	for i, combo := range km.Combos {
		if i >= maxLegendCombos {
			break
		}
		fmt.Fprintf(buf, "    <text x=\"0\" y=\"%.0f\" class=\"legend\">• Combo: %s = %s</text>\n",
			y, Escape(strings.Join(combo.Actions, " + ")), Escape(combo.Output))
		y += 25
	}

	fmt.Fprintf(buf, "    <text x=\"0\" y=\"%.0f\" class=\"legend\">• MT() = Mod-Tap (hold for modifier, tap for key)</text>\n", y)
	y += 25
	if km.Vial != nil && km.Vial.Matrix.Rows > 0 {
		fmt.Fprintf(buf, "    <text x=\"0\" y=\"%.0f\" class=\"legend\">• Matrix: %d×%d per side (vial.json)</text>\n",
			y, km.Vial.Matrix.Rows, km.Vial.Matrix.Cols)
		y += 25
	}
	buf.WriteString("\n")

	y += 25
	swatches := km.DeclaredLayers
	if swatches > len(layerColors) {
		swatches = len(layerColors)
	}
	for idx := range swatches {
		fmt.Fprintf(buf, "    <rect x=\"0\" y=\"%.0f\" width=\"50\" height=\"30\" rx=\"6\" class=\"key\" style=\"fill: %s\"/>\n",
			y, layerColor(idx))
		fmt.Fprintf(buf, "    <text x=\"60\" y=\"%.0f\" class=\"legend\">Layer %d: %s</text>\n\n",
			y+20, idx, Escape(km.LayerName(idx)))
		y += 40
	}

	fmt.Fprintf(buf, "    <rect x=\"0\" y=\"%.0f\" width=\"50\" height=\"30\" rx=\"6\" class=\"key-empty\"/>\n", y)
	fmt.Fprintf(buf, "    <text x=\"60\" y=\"%.0f\" class=\"legend\">Transparent key (passes through to lower layer)</text>\n", y+20)

	buf.WriteString("  </g>\n\n")
}
