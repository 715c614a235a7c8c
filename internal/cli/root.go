// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A chart colour palette resolver",
		Long: `Swatch resolves a colour descriptor into a fixed-size, ordered sequence
of colours for charts.

A descriptor can be the name of a built-in scientific ramp (viridis,
rainbow, heat, ...), the name of a Brewer palette (Spectral, Set1, ...,
matched in any letter case), a numeric identifier looked up on a remote
palette service, an explicit list of hex colours, or an image file or URL
whose dominant colours anchor the ramp. Resolution never fails: anything
unusable falls back to a built-in default ramp.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger builds an hclog logger honouring the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
}
