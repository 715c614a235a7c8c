package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// listSampleSize is how many colours are sampled per entry for previews.
const listSampleSize = 8

// newListCmd builds the list command.
func newListCmd() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in ramps and Brewer palettes",
		Long: `List the names swatch resolves without touching the network: the
built-in scientific ramps (matched case-sensitively) and the bundled
Brewer palettes (matched in any letter case).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, preview && colour.SupportsANSIColours())
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "show a colour swatch per entry")
	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, preview bool) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Built-in ramps:")
	for _, name := range colour.RampNames() {
		fn, _ := colour.Ramp(name)
		if err := printEntry(cmd, name, fn, preview); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Brewer palettes:")
	for _, name := range colour.BrewerNames() {
		anchors, _ := colour.BrewerLookup(name)
		fn, err := colour.Gradient(anchors)
		if err != nil {
			return fmt.Errorf("bundled palette %q: %w", name, err)
		}
		if err := printEntry(cmd, name, fn, preview); err != nil {
			return err
		}
	}
	return nil
}

// printEntry prints one name, optionally with a sampled swatch bar.
func printEntry(cmd *cobra.Command, name string, fn colour.Func, preview bool) error {
	out := cmd.OutOrStdout()
	if !preview {
		fmt.Fprintf(out, "  %s\n", name)
		return nil
	}

	colours, err := colour.Sample(fn, listSampleSize, false, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  %-10s %s\n", name, colour.PaletteBar(colours, 3))
	return nil
}
