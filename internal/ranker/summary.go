package ranker

import "github.com/alexanderramin/admissions/internal/domain"

// Summary tallies roster outcomes.
type Summary struct {
	Admitted          int
	Waitlisted        int
	Reported          int
	Absent            int
	WithdrawnAdmitted int
	WithdrawnWaitlist int
	Waiting           int
}

// Summarize counts statuses across a ranked roster.
func Summarize(roster []domain.Candidate) Summary {
	var s Summary
	for _, c := range roster {
		if c.IsAdmitted() {
			s.Admitted++
		} else {
			s.Waitlisted++
		}
		switch c.ReportStatus {
		case domain.ReportReported:
			s.Reported++
		case domain.ReportAbsent:
			s.Absent++
		case domain.ReportWithdrawn:
			s.WithdrawnAdmitted++
		}
		switch c.WaitingStatus {
		case domain.WaitingForPromotion:
			s.Waiting++
		case domain.WaitingWithdrawn:
			s.WithdrawnWaitlist++
		}
	}
	return s
}
