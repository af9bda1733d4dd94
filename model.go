// Package wlsat implements a DPLL-family SAT solver over CNF clauses,
// using two-watched-literal unit propagation, pure-literal
// initialization, and a frequency-ordered branching heuristic with a
// last-encountered-free-variable tiebreak.
package wlsat

// Stats reports purely informational counters collected during a solve:
// how many branching decisions were made, how many conflicts were hit,
// and the largest number of variables ever assigned at once (the Trail
// high-water mark). Nothing in the core contract requires these to be
// populated or accurate; they exist for CLI and benchmark consumption.
type Stats struct {
	Decisions      int
	Conflicts      int
	TrailHighWater int
}

// BuildModel validates clauses and runs the Initializer, returning a
// Problem ready to solve once or a descriptive error for malformed input (a clause
// containing the literal 0). Unlike Solve, it never panics; it is the
// entry point DIMACS and CLI callers should use so a bad instance file
// produces a clean error instead of a crash.
func BuildModel(clauses [][]int) (*Problem, error) {
	return newProblem(clauses)
}

// Solve decides whether clauses is satisfiable.
//
// An empty clause set is trivially satisfiable and returns an empty
// model. A clause set containing an empty clause is unsatisfiable.
// Otherwise Solve returns a total assignment (one signed literal for
// every variable that appears in clauses) or ok == false if none
// exists.
//
// Solve panics if a clause contains the literal 0; callers that need a
// graceful error for malformed input should validate with BuildModel
// first.
func Solve(clauses [][]int) (model []int, ok bool) {
	p, err := newProblem(clauses)
	if err != nil {
		panic(err)
	}
	model, _, ok = p.Solve()
	return model, ok
}

// SolveStats behaves like Solve but also returns the run's Stats.
func SolveStats(clauses [][]int) (model []int, stats Stats, ok bool) {
	p, err := newProblem(clauses)
	if err != nil {
		panic(err)
	}
	return p.Solve()
}

// Solve runs the Search Driver over an already-built Problem. Calling it
// more than once on the same Problem is not supported: the Literal
// Index and clause watchers are mutated in place during search and are
// not restored to their initial state afterward (only the Assignment
// is, implicitly, since a fresh one is allocated per call).
func (p *Problem) Solve() (model []int, stats Stats, ok bool) {
	if p.trivialUnsat {
		return nil, Stats{}, false
	}
	a := newAssignment()
	var st Stats
	model, ok = p.search(a, p.initialUnits, 0, false, &st)
	return model, st, ok
}
