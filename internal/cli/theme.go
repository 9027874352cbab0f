package cli

import (
	"github.com/alexanderramin/admissions/internal/cli/formatter"
	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// admissionsHuhTheme returns a huh theme using the formatter palette.
func admissionsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// departmentOptions builds "code name" select options keyed by code.
func departmentOptions(depts []domain.Department) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(depts))
	for _, d := range depts {
		options = append(options, huh.NewOption(d.Label(), d.Code))
	}
	return options
}

// departmentForm creates a huh form to select a department.
func departmentForm(depts []domain.Department, labels formatter.Labels, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(labels.SelectPrompt).
				Options(departmentOptions(depts)...).
				Value(result),
		),
	).WithTheme(admissionsHuhTheme()).WithShowHelp(false)
}

func selectDepartment(depts []domain.Department, labels formatter.Labels) (string, error) {
	var code string
	if err := departmentForm(depts, labels, &code).Run(); err != nil {
		return "", err
	}
	return code, nil
}
