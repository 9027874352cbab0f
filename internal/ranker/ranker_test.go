package ranker

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeApplicant(index int, id string, score float64) generator.Applicant {
	return generator.Applicant{Index: index, ID: id, Name: "n-" + id, Preference: "Preference 1", PreferenceRank: 1, Score: score}
}

func TestSortByScore_Descending(t *testing.T) {
	apps := []generator.Applicant{
		makeApplicant(0, "a", 70),
		makeApplicant(1, "b", 90),
		makeApplicant(2, "c", 80),
	}

	SortByScore(apps)

	assert.Equal(t, "b", apps[0].ID)
	assert.Equal(t, "c", apps[1].ID)
	assert.Equal(t, "a", apps[2].ID)
}

func TestSortByScore_TiesKeepGenerationOrder(t *testing.T) {
	apps := []generator.Applicant{
		makeApplicant(0, "a", 80),
		makeApplicant(1, "b", 95),
		makeApplicant(2, "c", 80),
		makeApplicant(3, "d", 80),
	}

	SortByScore(apps)

	require.Len(t, apps, 4)
	assert.Equal(t, []string{"b", "a", "c", "d"}, []string{apps[0].ID, apps[1].ID, apps[2].ID, apps[3].ID})
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	apps := []generator.Applicant{
		makeApplicant(0, "a", 70),
		makeApplicant(1, "b", 90),
	}
	dept := domain.Department{Code: "X", AcceptedCount: 1, WaitlistCount: 1}

	_ = Rank(0, dept, apps)

	assert.Equal(t, "a", apps[0].ID)
	assert.Equal(t, "b", apps[1].ID)
}

func TestRank_LabelsAcceptedThenWaitlisted(t *testing.T) {
	dept := domain.Department{Code: "N701", AcceptedCount: 20, WaitlistCount: 52}
	roster := Rank(0, dept, generator.Generate(0, dept))

	require.Len(t, roster, 72)
	for i := 0; i < 20; i++ {
		assert.Equal(t, domain.Admitted, roster[i].Type)
		assert.Equal(t, fmt.Sprintf("Admitted %d", i+1), roster[i].RankLabel)
		assert.Equal(t, i+1, roster[i].Position)
	}
	for i := 20; i < 72; i++ {
		assert.Equal(t, domain.Waitlisted, roster[i].Type)
		assert.Equal(t, fmt.Sprintf("Waitlisted %d", i-19), roster[i].RankLabel)
		assert.Equal(t, i+1, roster[i].Position)
	}
}

func TestRank_OrderReproducibleFromScoreFormula(t *testing.T) {
	dept := domain.Department{Code: "N703", AcceptedCount: 6, WaitlistCount: 13}
	roster := Rank(2, dept, generator.Generate(2, dept))

	index := make(map[string]int)
	for i := 0; i < dept.Total(); i++ {
		index[generator.GenerateIdentifier(dept.Code, i)] = i
	}

	for i := 1; i < len(roster); i++ {
		prevIdx, curIdx := index[roster[i-1].ID], index[roster[i].ID]
		prev := generator.GenerateScore(2, prevIdx)
		cur := generator.GenerateScore(2, curIdx)
		require.GreaterOrEqual(t, prev, cur, "position %d out of order", i)
		if prev == cur {
			assert.Less(t, prevIdx, curIdx, "tie at position %d must keep generation order", i)
		}
	}
}

func TestRank_PassesThroughIdentity(t *testing.T) {
	dept := domain.Department{Code: "N704", AcceptedCount: 5, WaitlistCount: 16}
	apps := generator.Generate(3, dept)
	byID := make(map[string]generator.Applicant)
	for _, a := range apps {
		byID[a.ID] = a
	}

	for _, c := range Rank(3, dept, apps) {
		a, ok := byID[c.ID]
		require.True(t, ok)
		assert.Equal(t, a.Name, c.Name)
		assert.Equal(t, a.Preference, c.PreferenceLabel)
		assert.Equal(t, a.PreferenceRank, c.PreferenceRank)
	}
}

func TestRank_ZeroAccepted(t *testing.T) {
	dept := domain.Department{Code: "X", AcceptedCount: 0, WaitlistCount: 3}
	roster := Rank(0, dept, generator.Generate(0, dept))

	require.Len(t, roster, 3)
	for i, c := range roster {
		assert.Equal(t, domain.Waitlisted, c.Type)
		assert.Equal(t, i, c.RankIndex)
	}
}

func TestRank_Empty(t *testing.T) {
	assert.Nil(t, Rank(0, domain.Department{Code: "X"}, nil))
}

// statusCodes encodes a group's statuses: W withdrawn, A absent,
// R reported, P waiting for promotion.
func statusCodes(t domain.AdmissionType, deptIndex, n int) string {
	b := make([]byte, n)
	for i := range b {
		st := DeriveStatus(t, deptIndex, i)
		switch {
		case st.Report == domain.ReportWithdrawn || st.Waiting == domain.WaitingWithdrawn:
			b[i] = 'W'
		case st.Report == domain.ReportAbsent:
			b[i] = 'A'
		case st.Report == domain.ReportReported:
			b[i] = 'R'
		case st.Waiting == domain.WaitingForPromotion:
			b[i] = 'P'
		default:
			b[i] = '?'
		}
	}
	return string(b)
}

func TestDeriveStatus_DefaultDepartments(t *testing.T) {
	assert.Equal(t, "WRRRRRWRRRRRWRRRRRWR", statusCodes(domain.Admitted, 0, 20))
	assert.Equal(t, "WPPPPPWPPPPPWPPPPPWPPPPPWPPPPPWPPPPPWPPPPPWPPPPWWWPP", statusCodes(domain.Waitlisted, 0, 52))
	assert.Equal(t, "WRRRRRWRRRRR", statusCodes(domain.Admitted, 1, 12))
	assert.Equal(t, "WPPPPPWPPPPPW", statusCodes(domain.Waitlisted, 2, 13))
	assert.Equal(t, "WRRRR", statusCodes(domain.Admitted, 3, 5))
}

func TestDeriveStatus_Absent(t *testing.T) {
	// seed 101+36*17 = 713, mod 13; give-up 12.2, no-show 15.2
	st := DeriveStatus(domain.Admitted, 0, 36)
	assert.Equal(t, domain.ReportAbsent, st.Report)
	assert.Equal(t, domain.WaitingNone, st.Waiting)
	assert.Equal(t, domain.DisplayWarn, st.Class)

	// seed 202+24*17 = 610, mod 10; give-up 9.8
	assert.Equal(t, domain.ReportAbsent, DeriveStatus(domain.Admitted, 1, 24).Report)
}

func TestDeriveStatus_Classes(t *testing.T) {
	assert.Equal(t, Status{Report: domain.ReportWithdrawn, Class: domain.DisplayErr}, DeriveStatus(domain.Admitted, 0, 0))
	assert.Equal(t, Status{Report: domain.ReportReported, Class: domain.DisplayOk}, DeriveStatus(domain.Admitted, 0, 1))
	assert.Equal(t, Status{Waiting: domain.WaitingWithdrawn, Class: domain.DisplayErr}, DeriveStatus(domain.Waitlisted, 0, 0))
	assert.Equal(t, Status{Waiting: domain.WaitingForPromotion, Class: domain.DisplayNormal}, DeriveStatus(domain.Waitlisted, 0, 1))
}

func TestSummarize(t *testing.T) {
	dept := domain.Department{Code: "N701", AcceptedCount: 20, WaitlistCount: 52}
	s := Summarize(Rank(0, dept, generator.Generate(0, dept)))

	assert.Equal(t, 20, s.Admitted)
	assert.Equal(t, 52, s.Waitlisted)
	assert.Equal(t, 16, s.Reported)
	assert.Equal(t, 0, s.Absent)
	assert.Equal(t, 4, s.WithdrawnAdmitted)
	assert.Equal(t, 11, s.WithdrawnWaitlist)
	assert.Equal(t, 41, s.Waiting)
}
