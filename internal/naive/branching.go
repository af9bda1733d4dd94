package naive

// BranchingSolve implements plain backtracking with no watched-literal
// machinery at all: at each branch it rebuilds the live clause set by
// dropping clauses satisfied by the branch literal and removing its
// complement from the clauses that remain, then recurses on the next
// variable in ascending variable order. It is ported from the source's
// branching_sat_solve/backtrack/branch.
func BranchingSolve(clauses [][]int) (model []int, ok bool) {
	for _, cls := range clauses {
		if len(cls) == 0 {
			return nil, false
		}
	}
	vars := variables(clauses)
	if len(vars) == 0 {
		return []int{}, true
	}
	result := branchingBacktrack(clauses, vars, nil)
	if result == nil {
		return nil, false
	}
	return result, true
}

func branchingReduce(clauses [][]int, assignment []int) [][]int {
	if len(assignment) == 0 {
		return clauses
	}
	branchLiteral := assignment[len(assignment)-1]
	var out [][]int
	for _, cls := range clauses {
		keep := true
		var reduced []int
		for _, l := range cls {
			if l == branchLiteral {
				keep = false
				break
			}
			if l == -branchLiteral {
				continue
			}
			reduced = append(reduced, l)
		}
		if keep {
			out = append(out, reduced)
		}
	}
	return out
}

func branchingBacktrack(clauses [][]int, vars []int, assignment []int) []int {
	reduced := branchingReduce(clauses, assignment)
	for _, cls := range reduced {
		if len(cls) == 0 {
			return nil
		}
	}
	if len(reduced) == 0 {
		return append([]int(nil), assignment...)
	}
	next := vars[len(assignment)]
	for _, sign := range [2]int{1, -1} {
		child := make([]int, len(assignment)+1)
		copy(child, assignment)
		child[len(assignment)] = sign * next
		if result := branchingBacktrack(reduced, vars, child); result != nil {
			return result
		}
	}
	return nil
}
