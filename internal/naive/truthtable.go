// Package naive collects dependency-free reference solvers used only as
// differential-testing oracles for the watched-literal core. None of
// these are optimized, and none share any code with the core solver.
package naive

import "sort"

// variables returns the distinct variables appearing in clauses, sorted
// ascending.
func variables(clauses [][]int) []int {
	seen := make(map[int]bool)
	var vars []int
	for _, cls := range clauses {
		for _, l := range cls {
			v := l
			if v < 0 {
				v = -v
			}
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	sort.Ints(vars)
	return vars
}

func clauseSatisfied(cls []int, assn map[int]bool) bool {
	for _, l := range cls {
		v := l
		if v < 0 {
			v = -v
		}
		want := l > 0
		if assn[v] == want {
			return true
		}
	}
	return false
}

func satisfied(clauses [][]int, assn map[int]bool) bool {
	for _, cls := range clauses {
		if len(cls) == 0 {
			return false
		}
		if !clauseSatisfied(cls, assn) {
			return false
		}
	}
	return true
}

// Solve enumerates all 2^n truth assignments over the clauses' variables
// and returns the first one that satisfies every clause. It exists
// purely as a brute-force oracle: correct by construction, and useful
// for cross-checking the watched-literal solver on small instances.
func Solve(clauses [][]int) (model []int, ok bool) {
	if len(clauses) == 0 {
		return []int{}, true
	}
	for _, cls := range clauses {
		if len(cls) == 0 {
			return nil, false
		}
	}
	vars := variables(clauses)
	n := len(vars)
	assn := make(map[int]bool, n)
	for bits := uint64(0); bits < uint64(1)<<uint(n); bits++ {
		for i, v := range vars {
			assn[v] = bits&(1<<uint(i)) != 0
		}
		if satisfied(clauses, assn) {
			model = make([]int, n)
			for i, v := range vars {
				if assn[v] {
					model[i] = v
				} else {
					model[i] = -v
				}
			}
			return model, true
		}
	}
	return nil, false
}
