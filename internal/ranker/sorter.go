package ranker

import (
	"sort"

	"github.com/alexanderramin/admissions/internal/generator"
)

// SortByScore orders applicants by score descending. Equal scores keep
// generation order.
func SortByScore(applicants []generator.Applicant) {
	sort.SliceStable(applicants, func(i, j int) bool {
		return applicants[i].Score > applicants[j].Score
	})
}
