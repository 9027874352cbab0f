package cli

import (
	"errors"

	"github.com/alexanderramin/admissions/internal/cli/formatter"
	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/roster"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errCodeRequired is returned by "show" without a code on a non-interactive terminal.
var errCodeRequired = errors.New("department code required (see 'admissions departments')")

func newShowCmd(app *App) *cobra.Command {
	format := formatter.FormatText

	cmd := &cobra.Command{
		Use:   "show [CODE]",
		Short: "Print a department's ranked roster",
		Long: "Print a department's ranked roster. Without CODE, an interactive\n" +
			"terminal shows a department selector.",
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || app.prepare() != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var codes []string
			for _, d := range app.Directory.Departments() {
				codes = append(codes, d.Code+"\t"+d.Name)
			}
			return codes, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := resolveCode(app, args)
			if err != nil {
				return err
			}

			entry, err := roster.Find(app.Directory, code)
			if err != nil {
				return err
			}

			r, err := formatter.NewRenderer(format, app.Labels)
			if err != nil {
				return err
			}
			return r.Render(cmd.OutOrStdout(), entry.Department, entry.Candidates)
		},
	}

	addFormatFlag(cmd.Flags(), &format)

	return cmd
}

func addFormatFlag(fs *pflag.FlagSet, format *formatter.Format) {
	fs.VarP(format, "format", "f", "Output format: text, html or json")
}

// resolveCode takes the code from args, or prompts when interactive.
// Codes are matched case-insensitively, full-width forms included.
func resolveCode(app *App, args []string) (string, error) {
	if len(args) == 1 {
		return domain.NormalizeCode(args[0]), nil
	}
	if !app.IsInteractive() {
		return "", errCodeRequired
	}
	return app.SelectDepartment(app.Directory.Departments(), app.Labels)
}
