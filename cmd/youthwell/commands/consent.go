package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/models"
)

func (c *cli) newConsentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consent",
		Short: "Manage storage consent",
		Long:  "Accept or decline saving your mood, chat, reminders and analytics on this device.",
	}
	cmd.AddCommand(c.newConsentStatusCmd())
	cmd.AddCommand(c.newConsentDecisionCmd("accept", "Allow saving data between sessions", models.ConsentAccepted))
	cmd.AddCommand(c.newConsentDecisionCmd("decline", "Keep data for the current session only", models.ConsentDeclined))
	cmd.AddCommand(c.newConsentClearCmd())
	return cmd
}

func (c *cli) newConsentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current consent decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd, false, func(env *Env) error {
				printConsent(cmd, env.Consent.Status())
				return nil
			})
		},
	}
}

func (c *cli) newConsentDecisionCmd(use, short string, status models.ConsentStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd, false, func(env *Env) error {
				var err error
				if status == models.ConsentAccepted {
					err = env.Consent.Accept()
				} else {
					err = env.Consent.Decline()
				}
				if err != nil {
					return err
				}
				printConsent(cmd, env.Consent.Status())
				return nil
			})
		},
	}
}

func (c *cli) newConsentClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the consent decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnv(cmd, false, func(env *Env) error {
				if err := env.Consent.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Consent decision cleared.")
				return nil
			})
		},
	}
}

func printConsent(cmd *cobra.Command, rec models.ConsentRecord) {
	out := cmd.OutOrStdout()
	if rec.Status == models.ConsentUnset {
		fmt.Fprintln(out, "Storage consent: not decided")
		return
	}
	fmt.Fprintf(out, "Storage consent: %s\n", rec.Status)
	if rec.Timestamp != nil {
		fmt.Fprintf(out, "  Recorded: %s\n", rec.Timestamp.Local().Format(time.RFC1123))
	}
	if rec.IsExpired {
		fmt.Fprintln(out, "  This decision is more than a year old.")
	}
}
