package testutil

import (
	"fmt"

	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/ranker"
)

// Candidate options
type CandidateOption func(*domain.Candidate)

// WithRank places the candidate at the 0-based rankIndex of its group and
// assigns the matching derived status for department 0.
func WithRank(t domain.AdmissionType, rankIndex int) CandidateOption {
	return func(c *domain.Candidate) {
		st := ranker.DeriveStatus(t, 0, rankIndex)
		c.Type = t
		c.RankIndex = rankIndex
		c.RankLabel = ranker.RankLabel(t, rankIndex)
		c.ReportStatus = st.Report
		c.WaitingStatus = st.Waiting
		c.DisplayClass = st.Class
	}
}

func WithName(name string) CandidateOption {
	return func(c *domain.Candidate) {
		c.Name = name
	}
}

func WithPreference(rank int) CandidateOption {
	return func(c *domain.Candidate) {
		c.PreferenceRank = rank
		c.PreferenceLabel = fmt.Sprintf("Preference %d", rank)
	}
}

// WithStatus overrides the derived status fields.
func WithStatus(report domain.ReportStatus, waiting domain.WaitingStatus, class domain.DisplayClass) CandidateOption {
	return func(c *domain.Candidate) {
		c.ReportStatus = report
		c.WaitingStatus = waiting
		c.DisplayClass = class
	}
}

// NewTestCandidate returns the first admitted candidate at position, with
// id and options applied.
func NewTestCandidate(position int, id string, opts ...CandidateOption) domain.Candidate {
	c := domain.Candidate{
		ID:       id,
		Name:     "測O試",
		Position: position,
	}
	WithRank(domain.Admitted, 0)(&c)
	WithPreference(1)(&c)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func NewTestDepartment(code string, accepted, waitlist int) domain.Department {
	return domain.Department{
		Code:          code,
		Name:          code + " Program",
		AcceptedCount: accepted,
		WaitlistCount: waitlist,
	}
}
