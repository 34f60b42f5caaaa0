package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/models"
)

func (c *cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show client settings and session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd, false, func(env *Env) error {
				out := cmd.OutOrStdout()
				snap := env.Dashboard.Snapshot()

				fmt.Fprintf(out, "API:        %s\n", env.Config.APIURL)
				fmt.Fprintf(out, "Data dir:   %s\n", env.Config.DataDir)
				printConsent(cmd, env.Consent.Status())
				if snap.SelectedMood != "" {
					m := models.Mood(snap.SelectedMood)
					fmt.Fprintf(out, "Mood:       %s %s\n", m.Emoji(), m.Label())
				} else {
					fmt.Fprintln(out, "Mood:       not selected")
				}
				fmt.Fprintf(out, "Messages:   %d\n", len(snap.ChatHistory))
				fmt.Fprintf(out, "Reminders:  %d\n", len(snap.Reminders))
				return nil
			})
		},
	}
}

func (c *cli) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all saved wellness data",
		Long:  "Resets mood, chat, reminders and analytics to a fresh session and deletes the saved copy. The consent decision is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd, false, func(env *Env) error {
				env.Dashboard.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), "All wellness data cleared.")
				return nil
			})
		},
	}
}
