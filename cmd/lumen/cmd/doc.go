package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Print a short usage banner",
	Long:  `doc is a placeholder for future generated documentation; for now it prints a short usage banner.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Lumen is a small dynamically-typed scripting language.")
		fmt.Println()
		fmt.Println("  lumen run <path.lum>   run a Lumen source file")
		fmt.Println("  lumen creator          open the project homepage")
		fmt.Println("  lumen version          print version information")
		fmt.Println()
		fmt.Println("See `lumen <command> --help` for details on any command.")
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
}
