package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse rosters interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return errors.New("browse requires an interactive terminal; use 'admissions show CODE'")
			}
			m := newBrowserModel(app.Directory, app.Labels)
			if start != "" {
				if err := m.selectCode(start); err != nil {
					return err
				}
			}
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&start, "department", "", "Department code to open first")

	return cmd
}
