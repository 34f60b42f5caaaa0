package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benvon/youthwell/internal/dashboard"
	"github.com/benvon/youthwell/internal/models"
)

func (c *cli) newChatCmd() *cobra.Command {
	var interactive, reset bool
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk with the wellness companion",
		Long:  "Sends a message and prints the reply. Without a message, prints the conversation so far.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(env *Env) error {
				panel := env.Dashboard.Chat
				out := cmd.OutOrStdout()

				if reset {
					panel.Clear()
					fmt.Fprintln(out, "Chat history cleared.")
					return nil
				}
				if interactive {
					return chatLoop(cmd, panel)
				}
				if len(args) == 0 {
					fmt.Fprintln(out, dashboard.RenderChat(panel.History()))
					return nil
				}

				reply, err := panel.Send(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, dashboard.RenderChat([]models.ChatMessage{reply}))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read messages from stdin until EOF or 'exit'")
	cmd.Flags().BoolVar(&reset, "clear", false, "Clear the chat history")
	return cmd
}

func chatLoop(cmd *cobra.Command, panel *dashboard.ChatPanel) error {
	out := cmd.OutOrStdout()
	history := panel.History()
	if n := len(history); n > 0 {
		fmt.Fprintln(out, dashboard.RenderChat(history[n-1:]))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		reply, err := panel.Send(cmd.Context(), line)
		if errors.Is(err, dashboard.ErrEmptyMessage) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, dashboard.RenderChat([]models.ChatMessage{reply}))
	}
}
