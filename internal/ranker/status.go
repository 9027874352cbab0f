package ranker

import "github.com/alexanderramin/admissions/internal/domain"

// Status is the outcome assigned to a rank position.
type Status struct {
	Report  domain.ReportStatus
	Waiting domain.WaitingStatus
	Class   domain.DisplayClass
}

// DeriveStatus returns the fixed-seed status for the rankIndex-th candidate
// (0-based) of the given admission group in department deptIndex.
func DeriveStatus(t domain.AdmissionType, deptIndex, rankIndex int) Status {
	seed := (deptIndex+1)*101 + rankIndex*17
	mod := float64(seed % 100)

	if t == domain.Admitted {
		giveUp := 5 + float64(rankIndex)*0.2
		noShow := giveUp + 3

		switch {
		case mod < giveUp:
			return Status{Report: domain.ReportWithdrawn, Class: domain.DisplayErr}
		case mod < noShow:
			return Status{Report: domain.ReportAbsent, Class: domain.DisplayWarn}
		default:
			return Status{Report: domain.ReportReported, Class: domain.DisplayOk}
		}
	}

	giveUp := 10 + float64(rankIndex)*0.5
	if mod < giveUp {
		return Status{Waiting: domain.WaitingWithdrawn, Class: domain.DisplayErr}
	}
	return Status{Waiting: domain.WaitingForPromotion, Class: domain.DisplayNormal}
}
