package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/internal/fizzbuzz"
	"bookshelf/internal/ui/views"
)

var fizzbuzzCmd = &cobra.Command{
	Use:   "fizzbuzz",
	Short: "Print the FizzBuzz sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			limit = e.cfg.UI.FizzBuzzLimit
		}
		if limit <= 0 {
			return fmt.Errorf("limit must be positive, got %d", limit)
		}

		_, err := fmt.Fprint(cmd.OutOrStdout(), views.RenderPlain(fizzbuzz.Sequence(limit)))
		return err
	},
}

func init() {
	fizzbuzzCmd.Flags().IntP("limit", "n", 100, "count from 1 to this number (default: ui.fizzbuzz_limit)")

	rootCmd.AddCommand(fizzbuzzCmd)
}
