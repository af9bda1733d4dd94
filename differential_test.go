package wlsat

import (
	"testing"

	"github.com/kbrazil/wlsat/internal/naive"
)

// TestDifferentialAgainstNaiveSolvers cross-checks the watched-literal
// core against three independent, unoptimized oracles on small random
// instances: all four must agree on outcome class (SAT/UNSAT). The
// oracles' models are checked separately by
// TestNaiveOraclesProduceValidModels.
func TestDifferentialAgainstNaiveSolvers(t *testing.T) {
	for _, tt := range []struct {
		numVars    int
		numClauses int
		numSeeds   int
	}{
		{2, 3, 20},
		{3, 6, 40},
		{4, 8, 40},
		{5, 10, 30},
	} {
		for seed := 0; seed < tt.numSeeds; seed++ {
			problem := makeRandomSat(int64(seed), tt.numVars, tt.numClauses)

			_, coreOK := Solve(problem)
			_, truthOK := naive.Solve(problem)
			_, branchOK := naive.BranchingSolve(problem)
			_, listOK := naive.ListPropSolve(problem)

			if coreOK != truthOK {
				t.Fatalf("vars=%d clauses=%d seed=%d: core=%v truth-table=%v on %v",
					tt.numVars, tt.numClauses, seed, coreOK, truthOK, problem)
			}
			if coreOK != branchOK {
				t.Fatalf("vars=%d clauses=%d seed=%d: core=%v branching=%v on %v",
					tt.numVars, tt.numClauses, seed, coreOK, branchOK, problem)
			}
			if coreOK != listOK {
				t.Fatalf("vars=%d clauses=%d seed=%d: core=%v listprop=%v on %v",
					tt.numVars, tt.numClauses, seed, coreOK, listOK, problem)
			}
		}
	}
}

// TestNaiveOraclesProduceValidModels checks that each oracle's own
// reported model, when SAT, actually satisfies the instance. This is a
// sanity check on the oracles themselves, independent of the core
// solver.
func TestNaiveOraclesProduceValidModels(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		problem := makeRandomSat(seed, 4, 8)

		if m, ok := naive.Solve(problem); ok && !solutionIsValid(problem, m) {
			t.Fatalf("[seed=%d] truth-table model %v invalid for %v", seed, m, problem)
		}
		if m, ok := naive.BranchingSolve(problem); ok && !solutionIsValid(problem, m) {
			t.Fatalf("[seed=%d] branching model %v invalid for %v", seed, m, problem)
		}
		if m, ok := naive.ListPropSolve(problem); ok && !solutionIsValid(problem, m) {
			t.Fatalf("[seed=%d] listprop model %v invalid for %v", seed, m, problem)
		}
	}
}

func TestPigeonholeAgreesAcrossSolvers(t *testing.T) {
	problem := pigeonhole(4, 3)
	if _, ok := Solve(problem); ok {
		t.Fatal("core: got SAT; want UNSAT")
	}
	if _, ok := naive.Solve(problem); ok {
		t.Fatal("truth-table: got SAT; want UNSAT")
	}
	if _, ok := naive.BranchingSolve(problem); ok {
		t.Fatal("branching: got SAT; want UNSAT")
	}
	if _, ok := naive.ListPropSolve(problem); ok {
		t.Fatal("listprop: got SAT; want UNSAT")
	}
}
