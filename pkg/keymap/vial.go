package keymap

import (
	"encoding/json"
	"os"

	"github.com/splitkeys/splitviz/pkg/errors"
)

// LoadVial reads a vial.json sidecar at path and returns its metadata.
//
// The file is optional input; callers that treat it as such should check for
// ErrCodeFileNotFound and continue without it. Only the display name and the
// matrix dimensions are decoded.
func LoadVial(path string) (*Vial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "vial config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var v Vial
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	return &v, nil
}
