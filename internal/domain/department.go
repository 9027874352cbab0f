package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Department is one admitting program with its configured slot counts.
type Department struct {
	Code          string `yaml:"code" json:"code"`
	Name          string `yaml:"name" json:"name"`
	AcceptedCount int    `yaml:"accepted" json:"accepted"`
	WaitlistCount int    `yaml:"waitlist" json:"waitlist"`
}

// Total returns the number of candidates generated for the department.
func (d Department) Total() int {
	return d.AcceptedCount + d.WaitlistCount
}

// Label returns the "code name" form used by department selectors.
func (d Department) Label() string {
	return fmt.Sprintf("%s %s", d.Code, d.Name)
}

// Validate checks that the department has a code and non-negative counts.
func (d Department) Validate() error {
	if d.Code == "" {
		return fmt.Errorf("%w: department code is required", ErrInvalidConfig)
	}
	if d.AcceptedCount < 0 {
		return fmt.Errorf("%w: department %s: accepted count %d must be >= 0", ErrInvalidConfig, d.Code, d.AcceptedCount)
	}
	if d.WaitlistCount < 0 {
		return fmt.Errorf("%w: department %s: waitlist count %d must be >= 0", ErrInvalidConfig, d.Code, d.WaitlistCount)
	}
	return nil
}

// ValidateDepartments validates every entry and rejects empty tables and
// duplicate codes.
func ValidateDepartments(depts []Department) error {
	if len(depts) == 0 {
		return fmt.Errorf("%w: no departments configured", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(depts))
	for _, d := range depts {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Code] {
			return fmt.Errorf("%w: duplicate department code %q", ErrInvalidConfig, d.Code)
		}
		seen[d.Code] = true
	}
	return nil
}

// NormalizeCode folds user input to the canonical code form. NFKC maps
// full-width input such as "ｎ７０１" to "n701" before upper-casing.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFKC.String(s)))
}
