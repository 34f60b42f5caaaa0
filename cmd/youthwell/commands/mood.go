package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/dashboard"
)

func (c *cli) newMoodCmd() *cobra.Command {
	var complete, reset bool
	cmd := &cobra.Command{
		Use:   "mood [happy|sad|stressed|anxious|calm|tired]",
		Short: "Pick a mood and get a wellness plan",
		Long:  "Without a mood, shows the picker and the current plan. With a mood, records it and fetches a plan for it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				picker := env.Dashboard.Wellness
				out := cmd.OutOrStdout()

				switch {
				case reset:
					picker.Clear()
					fmt.Fprintln(out, "Mood cleared.")
					return nil
				case complete:
					mood, _ := picker.Current()
					if mood == "" {
						return fmt.Errorf("no mood selected yet, run 'youthwell mood <mood>' first")
					}
					picker.Complete()
					fmt.Fprintf(out, "Nice work! %s activity completed.\n", mood.Label())
					return nil
				}

				if len(args) == 0 {
					mood, plan := picker.Current()
					fmt.Fprintln(out, dashboard.RenderMoods(mood))
					switch {
					case plan != nil:
						fmt.Fprintln(out, dashboard.RenderPlan(mood, *plan))
					case mood != "":
						fmt.Fprintf(out, "Run 'youthwell mood %s' for a fresh plan.\n", mood)
					}
					return nil
				}

				plan, err := picker.Select(cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				mood, _ := picker.Current()
				fmt.Fprintln(out, dashboard.RenderMoods(mood))
				fmt.Fprintln(out, dashboard.RenderPlan(mood, plan))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&complete, "complete", false, "Mark the current plan's activity as done")
	cmd.Flags().BoolVar(&reset, "clear", false, "Clear the selected mood and plan")
	cmd.MarkFlagsMutuallyExclusive("complete", "clear")
	return cmd
}
