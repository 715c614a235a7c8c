package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/resolver"
)

// resolveOptions holds the resolve command flags.
type resolveOptions struct {
	colours    int
	reverse    bool
	shuffle    bool
	altDefault bool
	service    string
	timeout    time.Duration
	format     string
	output     string
	preview    bool
}

// newResolveCmd builds the resolve command.
func newResolveCmd() *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [descriptor...]",
		Short: "Resolve a colour descriptor into a palette",
		Long: `Resolve a colour descriptor into an ordered sequence of colours.

With no arguments the built-in default ramp is sampled. A single argument
is tried as a ramp name, a Brewer palette name, a remote palette id, and
finally an image path or URL. Two or more arguments form an explicit
colour list interpolated in order.

Examples:
  # Seven colours from the default ramp
  swatch resolve

  # Five colours interpolated across an explicit list
  swatch resolve -n 5 "#CAF60D" "#18D33A" "#4255EC" "#E60873" "#19312A"

  # A Brewer palette, letter case does not matter
  swatch resolve -n 9 spectral

  # A built-in perceptual ramp, shuffled reproducibly
  swatch resolve --shuffle viridis

  # Dominant colours of an image anchor the ramp
  swatch resolve wallpaper.jpg

  # A palette fetched from the remote palette service
  swatch resolve 894243`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "n", 7, "number of colours to produce")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "reverse the colour order")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "shuffle the colour order (reproducible across runs)")
	cmd.Flags().BoolVar(&opts.altDefault, "alt-default", false, "use the earth-to-emerald default ramp instead of orange-to-blue")
	cmd.Flags().StringVar(&opts.service, "service", "", "remote palette service root (default: $SWATCH_PALETTE_SERVICE or the built-in host)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "remote fetch timeout (default: 10s)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour swatches in the terminal")

	return cmd
}

// runResolve executes the resolve command.
func runResolve(cmd *cobra.Command, args []string, opts resolveOptions) error {
	service := opts.service
	if service == "" {
		service = os.Getenv("SWATCH_PALETTE_SERVICE")
	}

	r := resolver.New(resolver.Config{
		Logger:     newLogger(cmd),
		ServiceURL: service,
		Timeout:    opts.timeout,
	})

	p, err := r.Resolve(cmd.Context(), resolver.Classify(args), resolver.Options{
		N:          opts.colours,
		Reverse:    opts.reverse,
		Shuffle:    opts.shuffle,
		OrangeBlue: !opts.altDefault,
	})
	if err != nil {
		return err
	}

	out, err := formatPalette(p, opts.format, opts.preview && colour.SupportsANSIColours())
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// formatPalette formats the palette according to the requested format.
func formatPalette(p *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		out := ""
		for _, c := range p.Colours {
			if showPreview {
				out += colour.FormatColourWithPreview(c, 8) + "\n"
			} else {
				out += c.Hex() + "\n"
			}
		}
		return out, nil
	case "rgb":
		out := ""
		for _, c := range p.Colours {
			if showPreview {
				out += colour.FormatColourWithPreview(c, 8) + "  " + c.String() + "\n"
			} else {
				out += c.String() + "\n"
			}
		}
		return out, nil
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}
