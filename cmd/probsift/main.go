package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

var errPrefix = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:   "probsift <problems.json>",
	Short: "Filter an editor's exported problems by substring terms",
	Long:  `Read a problems-view JSON export, keep the records matching the include/exclude terms, and print them as a table, a count, or JSON.`,
	Args:  cobra.ExactArgs(1),
	Example: `  probsift problems.json -i deprecated
  probsift problems.json -i deprecated -e API --ignore-case
  probsift problems.json -f 'deprecated,-API,severity>=warning' -j`,
	RunE:          runFilter,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		errPrefix.Fprint(os.Stderr, "error: ")
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(ExitInputError)
	}
}
