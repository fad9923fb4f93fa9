package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/splitkeys/splitviz/pkg/errors"
	"github.com/splitkeys/splitviz/pkg/layout"
)

// writeConfig writes a shape-correct keyboard.toml into a temp dir and
// returns its path.
func writeConfig(t *testing.T) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("[keyboard]\nname = \"testboard\"\n\n")
	b.WriteString("[layout]\nlayers = 1\nkeymap = [\n")
	b.WriteString("    # Base\n    [\n")
	for r := range layout.Rows {
		b.WriteString("        [")
		for c := range layout.Cols {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", fmt.Sprintf("k%d-%d", r, c))
		}
		b.WriteString("],\n")
	}
	b.WriteString("    ],\n]\n\n")
	b.WriteString("[behavior.combo]\ncombos = [\n")
	b.WriteString("    { actions = [\"k0-1\", \"k0-2\"], output = \"esc\" },\n")
	b.WriteString("]\n")

	path := filepath.Join(t.TempDir(), "keyboard.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"all valid", []string{"svg", "png", "pdf"}, false},
		{"empty", nil, false},
		{"unknown", []string{"svg", "webp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{ConfigPath: "keyboard.toml"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("default scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("default logger should be set")
	}
}

func TestOptionsRequireConfigPath(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestExecuteSVG(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		ConfigPath: writeConfig(t),
		Formats:    []string{FormatSVG},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	doc := string(result.Artifacts[FormatSVG])
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Error("svg artifact should be a complete document")
	}
	if !strings.Contains(doc, "testboard") {
		t.Error("svg artifact should carry the keyboard name")
	}
	if result.Keymap == nil || result.Keymap.Name != "testboard" {
		t.Errorf("result keymap = %+v, want testboard", result.Keymap)
	}
	if result.Stats.LayerCount != 1 || result.Stats.ComboCount != 1 {
		t.Errorf("stats = %+v, want 1 layer and 1 combo", result.Stats)
	}
}

func TestExecuteMissingConfig(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "nope.toml"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestExecuteMissingVialContinues(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		ConfigPath: writeConfig(t),
		VialPath:   filepath.Join(t.TempDir(), "vial.json"),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Keymap.Vial != nil {
		t.Error("missing vial sidecar should leave Vial nil")
	}
}

func TestExecuteVialSidecar(t *testing.T) {
	dir := t.TempDir()
	vialPath := filepath.Join(dir, "vial.json")
	vial := `{"name": "testboard", "matrix": {"rows": 4, "cols": 6}}`
	if err := os.WriteFile(vialPath, []byte(vial), 0o644); err != nil {
		t.Fatalf("write vial: %v", err)
	}

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{
		ConfigPath: writeConfig(t),
		VialPath:   vialPath,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Keymap.Vial == nil || result.Keymap.Vial.Matrix.Rows != 4 {
		t.Errorf("vial = %+v, want 4-row matrix", result.Keymap.Vial)
	}
	if !strings.Contains(string(result.Artifacts[FormatSVG]), "vial.json") {
		t.Error("footer should mention the vial sidecar")
	}
}

func TestExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(nil)
	_, err := runner.Execute(ctx, Options{ConfigPath: writeConfig(t)})
	if err == nil {
		t.Fatal("Execute() with cancelled context should fail")
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), Options{
		ConfigPath: writeConfig(t),
		Formats:    []string{"webp"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}
