// Package dimacs loads DIMACS CNF files directly into a *sat.Solver,
// built on top of github.com/rhartert/dimacs's streaming Builder
// interface rather than materializing an intermediate instance value.
package dimacs

import (
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/watchsat/watchsat/internal/sat"
)

// Load parses filename as DIMACS CNF and installs its variables and
// clauses into s. Per spec.md §6's parser contract, a formula that is
// trivially unsatisfiable at parse time (an empty clause, two
// contradictory unit clauses, or a formula with no clauses at all) is not
// reported as a parse error: Load returns nil and the triviality is
// recorded on s, to be reported by Solve.
func Load(filename string, s *sat.Solver) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()

	return LoadReader(f, s)
}

// LoadReader is Load without the file-opening step, exposed for tests
// that build fixtures in memory.
func LoadReader(r io.Reader, s *sat.Solver) error {
	b := &builder{solver: s}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	if !b.sawProblem {
		return fmt.Errorf("dimacs: missing %q header line", "p cnf")
	}
	if !b.sawClause {
		// "On EOF with no clauses and no units, exit UNSATISFIABLE" (spec
		// §6). Route through AddClause(nil) so the solver's own empty-
		// clause handling is the single place this policy is implemented.
		return s.AddClause(nil)
	}
	return nil
}

// builder implements github.com/rhartert/dimacs's Builder interface,
// feeding parsed variables and clauses straight into a *sat.Solver.
type builder struct {
	solver     *sat.Solver
	sawProblem bool
	sawClause  bool
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want \"cnf\"", problem)
	}
	if int64(nVars) > sat.MaxVar() {
		return fmt.Errorf("variable count %d overflows the configured literal width", nVars)
	}
	if int64(nClauses) > sat.MaxClauseCount() {
		return fmt.Errorf("clause count %d overflows the configured clause-id width", nClauses)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	b.sawProblem = true
	return nil
}

func (b *builder) Comment(string) error { return nil }

func (b *builder) Clause(tmp []int) error {
	b.sawClause = true

	lits := make([]sat.Literal, len(tmp))
	for i, v := range tmp {
		if v == 0 {
			return fmt.Errorf("literal 0 is reserved as the clause terminator")
		}
		mag := int64(v)
		if mag < 0 {
			mag = -mag
		}
		if mag > sat.MaxVar() {
			return fmt.Errorf("literal %d overflows the configured literal width", v)
		}
		lits[i] = sat.Literal(v)
	}
	return b.solver.AddClause(lits)
}
