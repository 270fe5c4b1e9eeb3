package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bookshelf/internal/dashboard"
	"bookshelf/internal/ui/views"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the spend dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		insights, _ := cmd.Flags().GetBool("insights")

		view := dashboard.ViewOverview
		if insights {
			view = dashboard.ViewInsights
		}

		out := views.NewRenderer().Dashboard().RenderDashboard(
			dashboard.MockData(), view, dashboard.Greeting(time.Now().Hour()))
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	dashboardCmd.Flags().Bool("insights", false, "show the key insights view instead of the overview")

	rootCmd.AddCommand(dashboardCmd)
}
