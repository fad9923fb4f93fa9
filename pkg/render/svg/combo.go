package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/splitkeys/splitviz/pkg/errors"
	"github.com/splitkeys/splitviz/pkg/keymap"
	"github.com/splitkeys/splitviz/pkg/label"
	"github.com/splitkeys/splitviz/pkg/layout"
)

// comboOverlay is the computed visual for one combo, placed in a
// layer-independent slot on the base layer's band.
type comboOverlay struct {
	combo      keymap.Combo
	positions  []layout.KeyPosition // Member positions in declaration order
	contiguous bool
	cx, cy     float64 // Centroid of the member key centers
}

// layoutCombos resolves every combo's member tokens against the base-layer
// token index and classifies each as contiguous or not. Combos with fewer
// than two members carry nothing to visualize and are skipped. A member
// token that matches no base-layer key is a fatal error: mod-tap keys must
// be referenced by their full MT(...) form, and a silent skip would hide a
// typo the diagram exists to catch.
func layoutCombos(combos []keymap.Combo, index map[string]layout.KeyPosition) ([]comboOverlay, error) {
	overlays := make([]comboOverlay, 0, len(combos))

	for _, combo := range combos {
		if len(combo.Actions) < 2 {
			continue
		}

		positions := make([]layout.KeyPosition, 0, len(combo.Actions))
		for _, tok := range combo.Actions {
			pos, ok := index[tok]
			if !ok {
				return nil, errors.New(errors.ErrCodeComboKeyNotFound,
					"combo %q (%s): key %q not found on layer 0",
					combo.Output, strings.Join(combo.Actions, " + "), tok)
			}
			positions = append(positions, pos)
		}

		var cx, cy float64
		for _, p := range positions {
			cx += p.CenterX()
			cy += p.CenterY()
		}
		n := float64(len(positions))

		overlays = append(overlays, comboOverlay{
			combo:      combo,
			positions:  positions,
			contiguous: layout.Contiguous(positions),
			cx:         cx / n,
			cy:         cy / n,
		})
	}

	return overlays, nil
}

// renderComboOverlays writes the overlay elements for every combo.
// Coincident centroids are not deconflicted; overlapping overlays stack in
// declaration order.
func renderComboOverlays(buf *bytes.Buffer, overlays []comboOverlay) {
	if len(overlays) == 0 {
		return
	}
	buf.WriteString("\n    <!-- Combos -->\n")

	for _, o := range overlays {
		text := Escape(label.Format(o.combo.Output).Text)
		if o.contiguous {
			renderContiguousCombo(buf, o, text)
		} else {
			renderConnectedCombo(buf, o, text)
		}
	}
}

// renderContiguousCombo draws a small rounded square at the midpoint of the
// member keys, labeled with the combo's output.
func renderContiguousCombo(buf *bytes.Buffer, o comboOverlay, text string) {
	x := o.cx - comboOverlaySize/2
	y := o.cy - comboOverlaySize/2
	fmt.Fprintf(buf, "    <rect x=\"%.1f\" y=\"%.1f\" width=\"%.0f\" height=\"%.0f\" class=\"combo-overlay\"/>\n",
		x, y, comboOverlaySize, comboOverlaySize)
	fmt.Fprintf(buf, "    <text x=\"%.1f\" y=\"%.1f\" class=\"combo-overlay-text\">%s</text>\n",
		o.cx, o.cy+5, text)
}

// renderConnectedCombo draws connector lines between consecutive members in
// declaration order, then a labeled circle at the centroid of all members.
func renderConnectedCombo(buf *bytes.Buffer, o comboOverlay, text string) {
	for i := 1; i < len(o.positions); i++ {
		a, b := o.positions[i-1], o.positions[i]
		fmt.Fprintf(buf, "    <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" class=\"combo-line\"/>\n",
			a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY())
	}

	fmt.Fprintf(buf, "    <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.0f\" class=\"combo-overlay\"/>\n",
		o.cx, o.cy, comboCircleRadius)
	fmt.Fprintf(buf, "    <text x=\"%.1f\" y=\"%.1f\" class=\"combo-overlay-text\">%s</text>\n",
		o.cx, o.cy+4, text)
}
