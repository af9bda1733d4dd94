package wlsat

import (
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSolve decides clauses with the gini CDCL solver, used here as an
// independent industrial-strength oracle.
func giniSolve(clauses [][]int) bool {
	g := gini.New()
	for _, cls := range clauses {
		for _, l := range cls {
			g.Add(z.Dimacs2Lit(l))
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1
}

// makeUniformRandom generates clauses drawn uniformly at random, with no
// planted satisfying assignment, so that a meaningful fraction of the
// instances are unsatisfiable and the outcome-class comparison below
// exercises both answers.
func makeUniformRandom(seed int64, numVars, numClauses, width int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	problem := make([][]int, numClauses)
	for i := range problem {
		cls := make([]int, 0, width)
		picked := make(map[int]bool, width)
		for len(cls) < width {
			v := rng.Intn(numVars) + 1
			if picked[v] {
				continue
			}
			picked[v] = true
			if rng.Intn(2) == 1 {
				v = -v
			}
			cls = append(cls, v)
		}
		problem[i] = cls
	}
	return problem
}

func TestAgainstGini(t *testing.T) {
	for _, tt := range []struct {
		numVars    int
		numClauses int
		width      int
		numSeeds   int
	}{
		{4, 20, 2, 50},
		{6, 30, 3, 50},
		{8, 45, 3, 30},
	} {
		for seed := 0; seed < tt.numSeeds; seed++ {
			problem := makeUniformRandom(int64(seed), tt.numVars, tt.numClauses, tt.width)
			model, ok := Solve(problem)
			giniOK := giniSolve(problem)
			if ok != giniOK {
				t.Fatalf("vars=%d clauses=%d width=%d seed=%d: got %v, gini says %v on %v",
					tt.numVars, tt.numClauses, tt.width, seed, ok, giniOK, problem)
			}
			if ok && !solutionIsValid(problem, model) {
				t.Fatalf("vars=%d clauses=%d width=%d seed=%d: model %v invalid for %v",
					tt.numVars, tt.numClauses, tt.width, seed, model, problem)
			}
		}
	}
}

func TestAgainstGiniPigeonhole(t *testing.T) {
	problem := pigeonhole(5, 4)
	if giniSolve(problem) {
		t.Fatal("gini: got SAT; want UNSAT")
	}
	if _, ok := Solve(problem); ok {
		t.Fatal("got SAT; want UNSAT")
	}
}
