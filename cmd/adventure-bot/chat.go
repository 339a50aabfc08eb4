package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func NewChatCommand() *cobra.Command {
	var subject string
	var saveOnExit string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive adventure session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(subject)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				initialModel(s),
				tea.WithAltScreen(),
			)

			if _, err := p.Run(); err != nil {
				return err
			}

			if saveOnExit != "" {
				return s.SaveToFile(saveOnExit)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject the adventure should teach")
	cmd.Flags().StringVar(&saveOnExit, "save", "", "Write the transcript to this JSON file on exit")

	return cmd
}
