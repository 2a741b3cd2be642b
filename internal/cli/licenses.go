package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkproj/mkproj/internal/license"
)

// licensesCmd represents the licenses command
var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List the licenses available for the license stage",
	Long: `List the licenses available for the license stage.

The identifier in the first column is the value accepted by the
--license flag of "mkproj new". Entries marked "(no text source)"
carry a trove classifier for setup.py but have no license text to
fetch, so they cannot be used to write a LICENSE.txt file.`,
	RunE: runLicenses,
}

func runLicenses(cmd *cobra.Command, args []string) error {
	printHeader("Available licenses")
	for _, entry := range license.All() {
		line := fmt.Sprintf("  %-16s %s", entry.ID, entry.Title)
		if !entry.HasSource() {
			line += dimText(" (no text source)")
		}
		fmt.Println(line)
	}
	return nil
}
