package formatter

import (
	"strconv"

	"github.com/alexanderramin/admissions/internal/domain"
)

// FormatDepartments renders the configured department table.
func FormatDepartments(depts []domain.Department, l Labels) string {
	headers := []string{l.ColCode, l.ColDept, l.ColAccepted, l.ColWaitlist, l.ColTotal}
	rows := make([][]string, 0, len(depts))
	for _, d := range depts {
		rows = append(rows, []string{
			Bold(d.Code),
			d.Name,
			StyleGreen.Render(strconv.Itoa(d.AcceptedCount)),
			StyleYellow.Render(strconv.Itoa(d.WaitlistCount)),
			strconv.Itoa(d.Total()),
		})
	}
	return RenderBox(l.DepartmentsTitle, RenderTable(headers, rows))
}
