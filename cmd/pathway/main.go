package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathway-dev/pathway/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┌┬┐┬ ┬┬ ┬┌─┐┬ ┬
  ╠═╝├─┤ │ ├─┤│││├─┤└┬┘
  ╩  ┴ ┴ ┴ ┴ ┴└┴┘┴ ┴ ┴
`

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "pathway",
		Short: "URL route matching and assembly",
		Long: `Pathway matches request paths against a named route table and
assembles paths back from route names and parameters.

Route tables are declared in YAML or JSON and loaded from a local
file or an s3:// URL. Features include:

  • Path templates with :parameters and [optional] groups
  • Per-parameter regex constraints and defaults
  • Nested route trees with inherited prefixes
  • Reverse routing by route name
  • Live route inspector with hot reload`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add commands
	rootCmd.AddCommand(
		matchCmd(),
		assembleCmd(),
		routesCmd(),
		serveCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the pathway ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
