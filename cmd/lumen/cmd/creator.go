package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/browser"
)

// ProjectURL is the homepage opened by `lumen creator`.
const ProjectURL = "https://github.com/lumen-lang/lumen"

var creatorCmd = &cobra.Command{
	Use:   "creator",
	Short: "Open the Lumen project homepage",
	Long:  `creator opens the Lumen project homepage in the OS default browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Opening %s ...\n", ProjectURL)
		return browser.Open(ProjectURL)
	},
}

func init() {
	rootCmd.AddCommand(creatorCmd)
}
