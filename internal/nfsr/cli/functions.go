package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keystream/nfsr-cycles/internal/nfsr/funcs"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the built-in feedback function library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s %4s %5s  %s\n", "name", "min", "rec", "description")
		for _, f := range funcs.All() {
			fmt.Fprintf(out, "%-18s %4d %5d  %s\n", f.Name, f.MinLength, f.RecommendedLength, f.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
