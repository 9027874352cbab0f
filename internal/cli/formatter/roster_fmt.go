package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/ranker"
	"github.com/charmbracelet/lipgloss"
)

// TextRenderer draws a boxed, color-coded terminal table.
type TextRenderer struct {
	Labels Labels
}

func (r TextRenderer) Render(w io.Writer, dept domain.Department, candidates []domain.Candidate) error {
	_, err := io.WriteString(w, FormatRoster(dept, candidates, r.Labels)+"\n")
	return err
}

// FormatRoster formats a department's roster as a styled table with an
// outcome summary.
func FormatRoster(dept domain.Department, candidates []domain.Candidate, l Labels) string {
	var b strings.Builder

	b.WriteString(RosterTable(candidates, l))
	b.WriteString("\n")
	b.WriteString(FormatSummary(ranker.Summarize(candidates), l))

	return RenderBox(dept.Label(), b.String())
}

// RosterTable renders just the candidate table, rows colored by display class.
func RosterTable(candidates []domain.Candidate, l Labels) string {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, l.RosterRow(c))
	}
	return RenderStyledTable(l.RosterHeaders(), rows, func(i int) lipgloss.Style {
		return ClassStyle(candidates[i].DisplayClass)
	})
}

// FormatSummary renders the admitted and waitlisted outcome counts.
func FormatSummary(s ranker.Summary, l Labels) string {
	admitted := fmt.Sprintf("%s %d: %s, %s, %s",
		l.ColAccepted, s.Admitted,
		StyleGreen.Render(fmt.Sprintf("%s %d", l.Reported, s.Reported)),
		StyleYellow.Render(fmt.Sprintf("%s %d", l.Absent, s.Absent)),
		StyleRed.Render(fmt.Sprintf("%s %d", l.ReportWithdrawn, s.WithdrawnAdmitted)),
	)
	waitlisted := fmt.Sprintf("%s %d: %s, %s",
		l.ColWaitlist, s.Waitlisted,
		StyleFg.Render(fmt.Sprintf("%s %d", l.WaitingForPromotion, s.Waiting)),
		StyleRed.Render(fmt.Sprintf("%s %d", l.WaitingWithdrawn, s.WithdrawnWaitlist)),
	)
	return admitted + "\n" + waitlisted
}
