package wlsat_test

import (
	"fmt"

	"github.com/kbrazil/wlsat"
)

func ExampleSolve() {
	// Problem: (x ∨ y) ∧ (¬x ∨ y) ∧ (x ∨ ¬y), encoded with x as
	// variable 1 and y as variable 2.
	problem := [][]int{
		{1, 2},
		{-1, 2},
		{1, -2},
	}

	solution, ok := wlsat.Solve(problem)
	if !ok {
		fmt.Println("not satisfiable")
		return
	}
	fmt.Println("satisfiable:", solution)
	// Output: satisfiable: [1 2]
}

func ExampleSolve_unsatisfiable() {
	// No assignment to variable 1 satisfies both clauses.
	problem := [][]int{
		{1},
		{-1},
	}

	if _, ok := wlsat.Solve(problem); !ok {
		fmt.Println("not satisfiable")
	}
	// Output: not satisfiable
}
