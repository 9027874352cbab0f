// Package ranker turns generated applicants into a ranked, frozen roster.
package ranker

import (
	"fmt"

	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/generator"
)

// Rank sorts a copy of applicants by score and assigns rank labels and
// statuses. The first dept.AcceptedCount positions are admitted, the rest
// waitlisted. Identifiers, names and preferences pass through unchanged.
func Rank(deptIndex int, dept domain.Department, applicants []generator.Applicant) []domain.Candidate {
	if len(applicants) == 0 {
		return nil
	}

	sorted := make([]generator.Applicant, len(applicants))
	copy(sorted, applicants)
	SortByScore(sorted)

	out := make([]domain.Candidate, len(sorted))
	for i, a := range sorted {
		t, rankIndex := classify(i, dept.AcceptedCount)
		st := DeriveStatus(t, deptIndex, rankIndex)

		out[i] = domain.Candidate{
			ID:              a.ID,
			Name:            a.Name,
			PreferenceLabel: a.Preference,
			PreferenceRank:  a.PreferenceRank,
			Position:        i + 1,
			Type:            t,
			RankIndex:       rankIndex,
			RankLabel:       RankLabel(t, rankIndex),
			ReportStatus:    st.Report,
			WaitingStatus:   st.Waiting,
			DisplayClass:    st.Class,
		}
	}
	return out
}

func classify(position, accepted int) (domain.AdmissionType, int) {
	if position < accepted {
		return domain.Admitted, position
	}
	return domain.Waitlisted, position - accepted
}

// RankLabel returns "Admitted N" or "Waitlisted N" for a 0-based rank index.
func RankLabel(t domain.AdmissionType, rankIndex int) string {
	if t == domain.Admitted {
		return fmt.Sprintf("Admitted %d", rankIndex+1)
	}
	return fmt.Sprintf("Waitlisted %d", rankIndex+1)
}
