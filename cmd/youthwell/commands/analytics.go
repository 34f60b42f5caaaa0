package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/dashboard"
)

func (c *cli) newAnalyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show wellness analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderAnalytics(env.Dashboard.Analytics.Data()))
				return nil
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "insights",
		Short: "Summarize your activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderInsights(env.Dashboard.Analytics.Insights(cmd.Context())))
				return nil
			})
		},
	})
	return cmd
}

func (c *cli) newCheckinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin",
		Short: "Record a daily check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderAnalytics(env.Dashboard.Analytics.CheckIn()))
				return nil
			})
		},
	}
}
