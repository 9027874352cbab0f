package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/admissions/internal/cli/formatter"
	"github.com/alexanderramin/admissions/internal/config"
	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/roster"
	"github.com/spf13/cobra"
)

// App holds the configuration and the built roster shared by all commands.
type App struct {
	Config config.Config

	// Stderr receives build logs. Defaults to os.Stderr.
	Stderr io.Writer

	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool

	// SelectDepartment prompts for a department code. Defaults to a huh select.
	SelectDepartment func(depts []domain.Department, labels formatter.Labels) (string, error)

	Directory roster.Directory
	Labels    formatter.Labels
}

// NewRootCmd creates the top-level "admissions" command and registers all
// subcommands against the provided App. The roster is built once, after
// flag parsing, before any subcommand runs.
func NewRootCmd(app *App) *cobra.Command {
	var departmentsPath, lang string

	root := &cobra.Command{
		Use:           "admissions",
		Short:         "Deterministic mock admission rosters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("departments") {
				app.Config.DepartmentsPath = departmentsPath
			}
			if cmd.Flags().Changed("lang") {
				app.Config.Lang = config.MatchLanguage(lang)
			}
			return app.prepare()
		},
	}

	root.PersistentFlags().StringVar(&departmentsPath, "departments", "", "YAML department table (default: built-in)")
	root.PersistentFlags().StringVar(&lang, "lang", "", "Label language, e.g. en or zh-TW")

	root.AddCommand(
		newDepartmentsCmd(app),
		newShowCmd(app),
		newBrowseCmd(app),
	)

	return root
}

// prepare loads the department table and builds the roster unless a
// Directory was injected.
func (app *App) prepare() error {
	app.Labels = formatter.LabelsFor(app.Config.Lang)
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.IsInteractive == nil {
		app.IsInteractive = func() bool { return false }
	}
	if app.SelectDepartment == nil {
		app.SelectDepartment = selectDepartment
	}
	if app.Directory != nil {
		return nil
	}

	depts, err := config.LoadDepartments(app.Config.DepartmentsPath)
	if err != nil {
		return fmt.Errorf("loading departments: %w", err)
	}

	var observer roster.Observer = roster.NoopObserver{}
	if app.Config.LogBuild {
		observer = roster.NewLogObserver(app.Stderr, app.Config.LogLevel)
	}

	book, err := roster.Build(depts, roster.WithObserver(observer))
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}
	app.Directory = book
	return nil
}
