package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/jobboard/internal/domain"
)

// placeholder returns the positional parameter marker for the n-th bound value (1-based)
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// whereClause accumulates predicates that are joined with AND.
// Placeholders are numbered in the order values are added.
type whereClause struct {
	predicates []string
	values     []any
}

// add appends a predicate binding one value. The %s in format receives the placeholder.
func (w *whereClause) add(format string, value any) {
	w.values = append(w.values, value)
	w.predicates = append(w.predicates, fmt.Sprintf(format, placeholder(len(w.values))))
}

// addRaw appends a predicate that binds no value
func (w *whereClause) addRaw(predicate string) {
	w.predicates = append(w.predicates, predicate)
}

func (w *whereClause) sql() string {
	if len(w.predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.predicates, " AND ")
}

func (w *whereClause) args() []any {
	return w.values
}

// jobFilterClause turns a JobFilter into predicates, always in the order
// minSalary, hasEquity, title.
func jobFilterClause(f domain.JobFilter) *whereClause {
	w := &whereClause{}
	if f.MinSalary != nil {
		w.add("j.salary >= %s", *f.MinSalary)
	}
	if f.WantsEquity() {
		w.addRaw("j.equity > 0")
	}
	if f.Title != nil {
		w.add("j.title ILIKE %s", "%"+escapeLike(*f.Title)+"%")
	}
	return w
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern (default escape character)
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// setClause builds the column assignments of a partial UPDATE.
// Columns are always package constants, never caller input.
type setClause struct {
	assignments []string
	values      []any
}

func (s *setClause) set(column string, value any) {
	s.values = append(s.values, value)
	s.assignments = append(s.assignments, fmt.Sprintf(`"%s"=%s`, column, placeholder(len(s.values))))
}

func (s *setClause) empty() bool {
	return len(s.assignments) == 0
}

func (s *setClause) sql() string {
	return strings.Join(s.assignments, ", ")
}

// next returns the placeholder following the assigned values, for the WHERE that follows SET
func (s *setClause) next() string {
	return placeholder(len(s.values) + 1)
}

// args returns the assigned values followed by extra trailing values
func (s *setClause) args(extra ...any) []any {
	out := make([]any, 0, len(s.values)+len(extra))
	out = append(out, s.values...)
	return append(out, extra...)
}

// jobUpdateClause maps a JobUpdate onto columns in the order title, salary, equity
func jobUpdateClause(u domain.JobUpdate) *setClause {
	s := &setClause{}
	if u.Title != nil {
		s.set(colTitle, *u.Title)
	}
	if u.Salary != nil {
		s.set(colSalary, *u.Salary)
	}
	if u.Equity != nil {
		s.set(colEquity, *u.Equity)
	}
	return s
}
