package dimacs

import (
	"strings"
	"testing"

	"github.com/watchsat/watchsat/internal/sat"
)

func TestLoadReader_ParsesVariablesAndClauses(t *testing.T) {
	const input = `c a comment
p cnf 3 2
1 -2 0
2 3 0
`
	s := sat.NewDefaultSolver()
	if err := LoadReader(strings.NewReader(input), s); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	if got, want := s.NumVariables(), 3; got != want {
		t.Errorf("NumVariables() = %d, want %d", got, want)
	}
}

func TestLoadReader_MissingProblemLineErrors(t *testing.T) {
	const input = "c nothing but a comment in this file\n"

	s := sat.NewDefaultSolver()
	if err := LoadReader(strings.NewReader(input), s); err == nil {
		t.Fatalf("LoadReader: want error for a file missing the problem line")
	}
}

func TestLoadReader_NoClausesIsUnsatPolicy(t *testing.T) {
	const input = "p cnf 2 0\n"

	s := sat.NewDefaultSolver()
	if err := LoadReader(strings.NewReader(input), s); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if got := s.Solve(); got != sat.False {
		t.Errorf("Solve() = %v, want False (no clauses at all is routed through the empty-clause policy)", got)
	}
}

func TestLoadReader_WrongProblemTypeErrors(t *testing.T) {
	const input = "p wcnf 2 1\n1 -2 0\n"

	s := sat.NewDefaultSolver()
	if err := LoadReader(strings.NewReader(input), s); err == nil {
		t.Fatalf("LoadReader: want error for a non-cnf problem type")
	}
}

func TestLoadReader_VariableOverflowErrors(t *testing.T) {
	const input = "p cnf 999999999999 1\n1 0\n"

	s := sat.NewDefaultSolver()
	if err := LoadReader(strings.NewReader(input), s); err == nil {
		t.Fatalf("LoadReader: want error when the variable count overflows the configured literal width")
	}
}

func TestLoadReader_ZeroLiteralInClauseErrors(t *testing.T) {
	// The Clause callback is only ever handed the literals preceding the
	// terminating 0; a literal value of 0 reaching it is malformed input.
	s := sat.NewDefaultSolver()
	s.AddVariable()
	b := &builder{solver: s}

	if err := b.Clause([]int{0}); err == nil {
		t.Fatalf("Clause([0]): want error")
	}
}
