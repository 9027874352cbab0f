package domain

// Candidate is a ranked roster entry. Values are frozen once the ranker
// assigns status; the synthetic ranking score is not carried here.
type Candidate struct {
	ID              string
	Name            string
	PreferenceLabel string
	PreferenceRank  int

	// Position is the 1-based index in display (rank) order.
	Position  int
	Type      AdmissionType
	RankIndex int // 0-based within Type
	RankLabel string

	ReportStatus  ReportStatus
	WaitingStatus WaitingStatus
	DisplayClass  DisplayClass
}

// RankNumber returns the 1-based rank within the candidate's admission group.
func (c Candidate) RankNumber() int {
	return c.RankIndex + 1
}

func (c Candidate) IsAdmitted() bool {
	return c.Type == Admitted
}

// Withdrawn reports whether the candidate gave up either an admitted slot
// or a waitlist position.
func (c Candidate) Withdrawn() bool {
	return c.ReportStatus == ReportWithdrawn || c.WaitingStatus == WaitingWithdrawn
}
