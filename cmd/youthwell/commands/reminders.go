package commands

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/dashboard"
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func (c *cli) newRemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Show or change daily reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderReminders(env.Dashboard.Reminders.Current()))
				return nil
			})
		},
	}
	cmd.AddCommand(c.newRemindersSetCmd())
	cmd.AddCommand(c.newRemindersSuggestCmd())
	return cmd
}

func (c *cli) newRemindersSetCmd() *cobra.Command {
	var activity string
	cmd := &cobra.Command{
		Use:     "set PERIOD HH:MM",
		Short:   "Set the reminder time for Morning, Afternoon or Evening",
		Example: "  youthwell reminders set Morning 07:30 --activity Exercise",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				panel := env.Dashboard.Reminders
				period := strings.TrimSpace(args[0])
				if period != "" {
					period = strings.ToUpper(period[:1]) + strings.ToLower(period[1:])
				}
				options, ok := panel.Options(period)
				if !ok {
					return fmt.Errorf("unknown period %q, use Morning, Afternoon or Evening", args[0])
				}
				at := strings.TrimSpace(args[1])
				if !clockTime.MatchString(at) {
					return fmt.Errorf("invalid time %q, use HH:MM", args[1])
				}
				if activity != "" && !slices.Contains(options, activity) {
					return fmt.Errorf("unknown %s activity %q, choose one of: %s", period, activity, strings.Join(options, ", "))
				}

				list := panel.Current()
				for i := range list {
					if list[i].Period != period {
						continue
					}
					list[i].Time = at
					if activity != "" {
						list[i].Activity = activity
					}
				}
				if err := panel.Save(list); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderReminders(panel.Current()))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&activity, "activity", "", "Activity for the reminder")
	return cmd
}

func (c *cli) newRemindersSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Get personalized reminder suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderSuggestions(env.Dashboard.Reminders.Suggest(cmd.Context())))
				return nil
			})
		},
	}
}
