package formatter

import (
	"encoding/json"
	"io"

	"github.com/alexanderramin/admissions/internal/domain"
)

// JSONRenderer writes the roster as an indented JSON document.
type JSONRenderer struct {
	Labels Labels
}

type jsonCandidate struct {
	Position        int                  `json:"position"`
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Type            domain.AdmissionType `json:"type"`
	Rank            int                  `json:"rank"`
	RankLabel       string               `json:"rank_label"`
	ReportStatus    domain.ReportStatus  `json:"report_status,omitempty"`
	WaitingStatus   domain.WaitingStatus `json:"waiting_status,omitempty"`
	DisplayClass    domain.DisplayClass  `json:"display_class,omitempty"`
	Preference      int                  `json:"preference"`
	PreferenceLabel string               `json:"preference_label"`
}

type jsonRoster struct {
	Department domain.Department `json:"department"`
	Candidates []jsonCandidate   `json:"candidates"`
}

func (r JSONRenderer) Render(w io.Writer, dept domain.Department, candidates []domain.Candidate) error {
	doc := jsonRoster{
		Department: dept,
		Candidates: make([]jsonCandidate, 0, len(candidates)),
	}
	for _, c := range candidates {
		doc.Candidates = append(doc.Candidates, jsonCandidate{
			Position:        c.Position,
			ID:              c.ID,
			Name:            c.Name,
			Type:            c.Type,
			Rank:            c.RankNumber(),
			RankLabel:       r.Labels.Rank(c),
			ReportStatus:    c.ReportStatus,
			WaitingStatus:   c.WaitingStatus,
			DisplayClass:    c.DisplayClass,
			Preference:      c.PreferenceRank,
			PreferenceLabel: r.Labels.PreferenceLabel(c),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
