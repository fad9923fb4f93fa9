package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitkeys/splitviz/pkg/label"
	"github.com/splitkeys/splitviz/pkg/layout"
	"github.com/splitkeys/splitviz/pkg/pipeline"
)

// newInfoCmd creates the info command for inspecting a keymap config
// without rendering anything.
func newInfoCmd() *cobra.Command {
	var vial string

	cmd := &cobra.Command{
		Use:   "info [keyboard.toml]",
		Short: "Summarize layers, combos, and hardware metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &renderOpts{vial: vial, vialSet: cmd.Flags().Changed("vial")}
			return runInfo(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&vial, "vial", "", "vial.json sidecar with hardware metadata")

	return cmd
}

func runInfo(cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	runner := pipeline.NewRunner(logger)

	km, err := runner.Load(pipeline.Options{
		ConfigPath: input,
		VialPath:   vialPath(input, opts),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if err := km.Validate(layout.Rows, layout.Cols); err != nil {
		return err
	}

	printTitle("Keyboard: %s", km.Name)
	printKeyValue("Layout", fmt.Sprintf("split 3×6+3, %d keys", layout.Build().Count()))
	if km.Vial != nil {
		printKeyValue("Matrix", fmt.Sprintf("%d×%d", km.Vial.Matrix.Rows, km.Vial.Matrix.Cols))
	}
	printNewline()

	printTitle("Layers (%d)", km.DeclaredLayers)
	for idx := range km.DeclaredLayers {
		if idx >= len(km.Layers) {
			printDetail("%d: %s (no key mappings)", idx, km.LayerName(idx))
			continue
		}
		printDetail("%d: %s (%d keys assigned)", idx, km.LayerName(idx), assignedKeys(km.Layers[idx].Rows))
	}

	if len(km.Combos) > 0 {
		printNewline()
		printTitle("Combos (%d)", len(km.Combos))
		for _, combo := range km.Combos {
			printDetail("%s %s %s", strings.Join(combo.Actions, " + "), iconArrow, label.Format(combo.Output).Text)
		}
	}

	return nil
}

// assignedKeys counts the non-transparent positions in a layer matrix.
func assignedKeys(rows [][]string) int {
	n := 0
	for _, row := range rows {
		for _, tok := range row {
			if !label.Format(tok).Transparent {
				n++
			}
		}
	}
	return n
}
