package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/models"
)

func (c *cli) newContactCmd() *cobra.Command {
	var req models.ContactRequest
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the YouthWell team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				resp, err := env.Dashboard.Contact.Submit(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
				if resp.TicketID != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Ticket: %s\n", resp.TicketID)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address for the reply")
	cmd.Flags().StringVar(&req.Message, "message", "", "Your message")
	return cmd
}
