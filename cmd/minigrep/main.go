package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gchait/minigrep/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfg cli.Config
	exitCode := 0

	root := &cobra.Command{
		Use:   "minigrep [flags] <pattern> <file>...",
		Short: "Search for regular expressions in local files",
		Long: `minigrep searches the given files line by line for a regular expression
and prints every matching line. Output is plain by default; -c highlights
the matched text and -m prints one machine-readable record per match.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(_ *cobra.Command, args []string) {
			cfg.Pattern = args[0]
			cfg.Paths = args[1:]
			exitCode = cli.Run(cfg)
		},
	}

	root.Flags().BoolVarP(&cfg.Highlight, "color", "c", false, "highlight matches; cannot be used with --machine")
	root.Flags().BoolVarP(&cfg.Machine, "machine", "m", false, "print in a machine-readable format")
	root.Flags().BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")

	// Config-file flags come first so explicit arguments win.
	root.SetArgs(append(cli.LoadConfigArgs(), os.Args[1:]...))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minigrep: %v\n", err)
		return 2
	}
	return exitCode
}
