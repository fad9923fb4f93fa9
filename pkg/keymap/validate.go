package keymap

import "github.com/splitkeys/splitviz/pkg/errors"

// Validate checks that every layer matches the expected grid shape.
//
// A layer with the wrong row count, or any row with the wrong column count,
// is a fatal configuration error (ErrCodeInvalidShape) naming the offending
// layer index; the renderer never guesses an intended shape. Layers declared
// in [layout] but absent from the keymap are allowed — they render as empty
// placeholder bands.
func (k *Keymap) Validate(wantRows, wantCols int) error {
	for _, layer := range k.Layers {
		if len(layer.Rows) != wantRows {
			return errors.New(errors.ErrCodeInvalidShape,
				"layer %d: expected %d rows, got %d", layer.Index, wantRows, len(layer.Rows))
		}
		for r, row := range layer.Rows {
			if len(row) != wantCols {
				return errors.New(errors.ErrCodeInvalidShape,
					"layer %d row %d: expected %d columns, got %d", layer.Index, r, wantCols, len(row))
			}
		}
	}
	return nil
}
