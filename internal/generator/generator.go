// Package generator synthesizes deterministic applicant records. Every
// value is a pure function of the department and candidate indexes.
package generator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/admissions/internal/domain"
)

const (
	minScore = 60.0
	maxScore = 100.0
)

// Applicant is a generated, not yet ranked, roster entry. Score is the
// ranking key and is dropped once the roster is ranked.
type Applicant struct {
	Index          int // generation order within the department
	ID             string
	Name           string
	PreferenceRank int
	Preference     string
	Score          float64
}

// Generate produces AcceptedCount+WaitlistCount applicants for the
// department at deptIndex, in generation order.
func Generate(deptIndex int, dept domain.Department) []Applicant {
	total := dept.Total()
	if total <= 0 {
		return nil
	}
	out := make([]Applicant, total)
	for i := range out {
		out[i] = Applicant{
			Index:          i,
			ID:             GenerateIdentifier(dept.Code, i),
			Name:           GenerateName(deptIndex, i),
			PreferenceRank: PreferenceRank(deptIndex, i),
			Preference:     GeneratePreference(deptIndex, i),
			Score:          GenerateScore(deptIndex, i),
		}
	}
	return out
}

// GenerateIdentifier returns the department code followed by the 1-based
// sequence number zero-padded to four digits.
func GenerateIdentifier(deptCode string, index int) string {
	return fmt.Sprintf("%s%04d", deptCode, index+1)
}

// GenerateName picks a surname and a given name from independent hashes
// of the two indexes.
func GenerateName(deptIndex, candIndex int) string {
	seedLast := (deptIndex+113)*9973 + (candIndex+17)*10007
	seedFirst := (deptIndex+337)*10009 + (candIndex+19)*9967

	last := surnames[seedLast%len(surnames)]
	first := givenNames[seedFirst%len(givenNames)]
	return last + namePlaceholder + first
}

// PreferenceRank returns the simulated program-choice priority, 1 (highest)
// through 5.
func PreferenceRank(deptIndex, candIndex int) int {
	seed := (deptIndex+1)*43 + candIndex*19
	switch bucket := seed % 10; {
	case bucket < 4:
		return 1
	case bucket < 7:
		return 2
	case bucket < 8:
		return 3
	case bucket < 9:
		return 4
	default:
		return 5
	}
}

// GeneratePreference returns the "Preference N" label.
func GeneratePreference(deptIndex, candIndex int) string {
	return fmt.Sprintf("Preference %d", PreferenceRank(deptIndex, candIndex))
}

// GenerateScore returns the synthetic ranking score in [60, 100] with two
// decimal places. The sine term is a fixed oscillator, not a random source.
func GenerateScore(deptIndex, candIndex int) float64 {
	seed1 := (deptIndex + 1) * 397
	seed2 := (candIndex + 1) * 13
	noise := math.Sin(float64(seed1*seed2)) * 10
	score := 75 + noise + float64(seed2%25)
	score = math.Max(minScore, math.Min(maxScore, score))
	return round2(score)
}

// round2 rounds through the decimal representation so results match
// fixed-point formatting rather than binary multiplication.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	return r
}
