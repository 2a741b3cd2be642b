package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkproj/mkproj/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalVerbose bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mkproj",
	Short: "Make a project directory with associated setup",
	Long: `mkproj assembles a new project directory.

Use "mkproj new <path>" to:
  1. Create the project directory
  2. Optionally set up a python virtual environment and a git repository
  3. Fetch license and .gitignore text from remote sources
  4. Materialize readme, script, and packaging templates with
     placeholder substitution

Per-user defaults (license, author, email, ...) are read from
~/.config/mkproj/mkproj.yaml when present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, FlagVerbose, "v", false, DescVerbose)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(licensesCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
