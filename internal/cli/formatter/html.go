package formatter

import (
	"html/template"
	"io"

	"github.com/alexanderramin/admissions/internal/domain"
)

// HTMLRenderer writes the roster as an HTML section with the title and a
// seven-column table. Row classes are status-ok, status-warn, status-err
// or empty.
type HTMLRenderer struct {
	Labels Labels
}

var rosterHTML = template.Must(template.New("roster").Parse(`<section id="result-area">
<h2 id="dept-title">{{.Title}}</h2>
<table>
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody id="student-list-body">
{{- range .Rows}}
<tr class="{{.RowClass}}">
    <td>{{.Position}}</td>
    <td>{{.ID}}</td>
    <td>{{.Name}}</td>
    <td>{{.Rank}}</td>
    <td class="{{.ReportClass}}">{{.Report}}</td>
    <td>{{.Waiting}}</td>
    <td>{{.Preference}}</td>
</tr>
{{- end}}
</tbody>
</table>
</section>
`))

type htmlRow struct {
	RowClass    string
	Position    int
	ID          string
	Name        string
	Rank        string
	ReportClass string
	Report      string
	Waiting     string
	Preference  string
}

type htmlPage struct {
	Title   string
	Headers []string
	Rows    []htmlRow
}

func (r HTMLRenderer) Render(w io.Writer, dept domain.Department, candidates []domain.Candidate) error {
	l := r.Labels
	page := htmlPage{
		Title:   dept.Name,
		Headers: l.RosterHeaders(),
		Rows:    make([]htmlRow, 0, len(candidates)),
	}
	for _, c := range candidates {
		row := htmlRow{
			RowClass:   ClassName(c.DisplayClass),
			Position:   c.Position,
			ID:         c.ID,
			Name:       c.Name,
			Rank:       l.Rank(c),
			Report:     l.Report(c.ReportStatus),
			Waiting:    l.Waiting(c.WaitingStatus),
			Preference: l.PreferenceLabel(c),
		}
		if c.ReportStatus == domain.ReportReported {
			row.ReportClass = "status-ok"
		}
		page.Rows = append(page.Rows, row)
	}
	return rosterHTML.Execute(w, page)
}
