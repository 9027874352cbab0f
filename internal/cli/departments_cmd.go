package cli

import (
	"fmt"

	"github.com/alexanderramin/admissions/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDepartmentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "departments",
		Aliases: []string{"depts", "ls"},
		Short:   "List configured departments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDepartments(app.Directory.Departments(), app.Labels))
			return nil
		},
	}
}
