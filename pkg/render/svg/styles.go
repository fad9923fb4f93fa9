package svg

// Canvas and band geometry. The canvas grows one band per declared layer;
// two configurations with the same grid shape and layer count produce the
// same dimensions regardless of key labels or colors.
const (
	canvasWidth     = 1600.0
	topMargin       = 50.0
	layerBandHeight = 350.0
	legendHeight    = 400.0
	layerOriginX    = 50.0
)

// Combo overlay geometry.
const (
	comboOverlaySize  = 28.0 // Edge of the rounded overlay square
	comboCircleRadius = 15.0 // Radius of the centroid circle
)

// layerColors is the fixed accent palette, keyed by layer index. Indices
// beyond the palette fall back to defaultLayerColor.
var layerColors = map[int]string{
	0: "#f0f0f0", // Base layer - light gray
	1: "#e8f4f8", // Numbers - light blue
	2: "#fff4e8", // Functions - light orange
	3: "#f0e8ff", // Navigation - light purple
	4: "#f8e8f0", // Custom - light pink
}

const defaultLayerColor = "#f0f0f0"

// layerColor returns the fill color for a layer index.
func layerColor(idx int) string {
	if c, ok := layerColors[idx]; ok {
		return c
	}
	return defaultLayerColor
}

// stylesheet is the document-wide style block. Class names and values are a
// fixed compatibility surface shared with downstream tooling.
const stylesheet = `      .layer-title { font-family: Arial, sans-serif; font-size: 28px; font-weight: bold; fill: #333; }
      .key { fill: #f0f0f0; stroke: #333; stroke-width: 2; rx: 6; }
      .key-empty { fill: #fafafa; stroke: #ccc; stroke-width: 1; stroke-dasharray: 3,3; rx: 6; }
      .key-text { font-family: 'Courier New', monospace; font-size: 12px; fill: #000; text-anchor: middle; }
      .key-small { font-size: 9px; }
      .empty-label { font-family: Arial, sans-serif; font-size: 10px; fill: #999; text-anchor: middle; }
      .legend { font-family: Arial, sans-serif; font-size: 14px; fill: #666; }
      .combo-line { stroke: #003366; stroke-width: 3; fill: none; opacity: 0.7; }
      .combo-key { fill: #003366; stroke: #001a33; stroke-width: 1.5; rx: 3; }
      .combo-text { font-family: 'Courier New', monospace; font-size: 8px; fill: #fff; text-anchor: middle; font-weight: bold; }
      .combo-overlay { fill: #003366; stroke: #001a33; stroke-width: 2; rx: 6; opacity: 0.95; }
      .combo-overlay-text { font-family: 'Courier New', monospace; font-size: 11px; fill: #fff; text-anchor: middle; font-weight: bold; }`
