package testutil

import (
	"testing"

	"github.com/alexanderramin/admissions/internal/config"
	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/roster"
)

// NewTestBook builds the roster for depts, or for the built-in table when
// none are given. It fails the test on configuration errors.
func NewTestBook(t *testing.T, depts ...domain.Department) *roster.Book {
	t.Helper()
	if len(depts) == 0 {
		depts = config.DefaultDepartments()
	}
	b, err := roster.Build(depts)
	if err != nil {
		t.Fatalf("failed to build test roster: %v", err)
	}
	return b
}

// MustEntry returns the roster entry for code from b.
func MustEntry(t *testing.T, b *roster.Book, code string) roster.Entry {
	t.Helper()
	e, err := roster.Find(b, code)
	if err != nil {
		t.Fatalf("roster entry %s: %v", code, err)
	}
	return e
}
