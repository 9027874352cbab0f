// Package roster builds the immutable per-department admission rosters.
package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/admissions/internal/domain"
	"github.com/alexanderramin/admissions/internal/generator"
	"github.com/alexanderramin/admissions/internal/ranker"
)

// ErrUnknownDepartment is returned when a department code is not configured.
var ErrUnknownDepartment = errors.New("unknown department")

// Entry is one department and its ranked candidates.
type Entry struct {
	Department domain.Department
	Candidates []domain.Candidate
}

// Directory resolves a department code to its roster. Rendering layers
// depend on this rather than on *Book.
type Directory interface {
	Departments() []domain.Department
	Lookup(code string) (Entry, bool)
}

// Book is the full set of rosters, keyed by department code. It is never
// modified after Build returns; accessors hand out copies.
type Book struct {
	departments []domain.Department
	entries     map[string]Entry
}

var _ Directory = (*Book)(nil)

type buildOptions struct {
	observer Observer
	ctx      context.Context
}

// Option configures Build.
type Option func(*buildOptions)

// WithObserver reports one BuildEvent per department to obs.
func WithObserver(obs Observer) Option {
	return func(o *buildOptions) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithContext sets the context passed to the observer.
func WithContext(ctx context.Context) Option {
	return func(o *buildOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Build validates the department table, then generates and ranks every
// department in table order. A department's seed index is its position
// in depts.
func Build(depts []domain.Department, opts ...Option) (*Book, error) {
	o := buildOptions{observer: NoopObserver{}, ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := domain.ValidateDepartments(depts); err != nil {
		return nil, err
	}

	b := &Book{
		departments: make([]domain.Department, len(depts)),
		entries:     make(map[string]Entry, len(depts)),
	}
	copy(b.departments, depts)

	for i, d := range b.departments {
		start := time.Now()
		candidates := ranker.Rank(i, d, generator.Generate(i, d))
		b.entries[d.Code] = Entry{Department: d, Candidates: candidates}

		o.observer.ObserveBuild(o.ctx, BuildEvent{
			Department: d.Code,
			Index:      i,
			Candidates: len(candidates),
			Admitted:   min(d.AcceptedCount, len(candidates)),
			Waitlisted: len(candidates) - min(d.AcceptedCount, len(candidates)),
			Duration:   time.Since(start),
		})
	}
	return b, nil
}

// Departments returns the configured departments in table order.
func (b *Book) Departments() []domain.Department {
	out := make([]domain.Department, len(b.departments))
	copy(out, b.departments)
	return out
}

// Lookup returns the roster for code.
func (b *Book) Lookup(code string) (Entry, bool) {
	e, ok := b.entries[code]
	if !ok {
		return Entry{}, false
	}
	candidates := make([]domain.Candidate, len(e.Candidates))
	copy(candidates, e.Candidates)
	return Entry{Department: e.Department, Candidates: candidates}, true
}

// Find is Lookup with an ErrUnknownDepartment error for missing codes.
func Find(dir Directory, code string) (Entry, error) {
	e, ok := dir.Lookup(code)
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownDepartment, code)
	}
	return e, nil
}

// Len returns the number of departments.
func (b *Book) Len() int {
	return len(b.departments)
}
