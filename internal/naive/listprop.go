package naive

// ListPropSolve implements DPLL via whole-formula copying: unit
// propagation and pure-literal elimination rebuild the clause set from
// scratch at every step, and branching simplifies and copies the
// formula again rather than mutating any shared state. This is the
// opposite design choice from the core watched-literal solver (which
// mutates a single shared index in place) and is ported, sequentially,
// from a source that ran its two branches as goroutines; that
// concurrency isn't reproduced here since nothing needs it.
func ListPropSolve(clauses [][]int) (model []int, ok bool) {
	for _, cls := range clauses {
		if len(cls) == 0 {
			return nil, false
		}
	}
	sat, final := listPropSolve(clauses, map[int]bool{})
	if !sat {
		return nil, false
	}
	vars := variables(clauses)
	model = make([]int, len(vars))
	for i, v := range vars {
		if final[v] {
			model[i] = v
		} else {
			model[i] = -v
		}
	}
	return model, true
}

func listPropIsSatisfied(clauses [][]int, assignment map[int]bool) bool {
	for _, cls := range clauses {
		satisfied := false
		for _, l := range cls {
			v := l
			if v < 0 {
				v = -v
			}
			if val, ok := assignment[v]; ok && (l > 0) == val {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func listPropContainsEmpty(clauses [][]int) bool {
	for _, cls := range clauses {
		if len(cls) == 0 {
			return true
		}
	}
	return false
}

// listPropUnitPropagate repeatedly finds a unit clause, asserts its
// literal, drops every clause it satisfies, and strips its complement
// from the clauses that remain.
func listPropUnitPropagate(clauses [][]int, assignment map[int]bool) ([][]int, map[int]bool) {
	formula := append([][]int(nil), clauses...)
	assn := cloneAssignment(assignment)
	for {
		unit, found := 0, false
		for _, cls := range formula {
			if len(cls) == 1 {
				unit, found = cls[0], true
				break
			}
		}
		if !found {
			break
		}
		assn[abs(unit)] = unit > 0
		formula = listPropSimplify(formula, unit)
	}
	return formula, assn
}

// listPropPureLiterals assigns every literal whose complement never
// appears and drops the clauses it satisfies.
func listPropPureLiterals(clauses [][]int, assignment map[int]bool) ([][]int, map[int]bool) {
	formula := append([][]int(nil), clauses...)
	assn := cloneAssignment(assignment)

	present := make(map[int]bool)
	for _, cls := range formula {
		for _, l := range cls {
			present[l] = true
		}
	}
	for l := range present {
		if present[-l] {
			continue
		}
		assn[abs(l)] = l > 0
		var next [][]int
		for _, cls := range formula {
			if !containsLiteral(cls, l) {
				next = append(next, cls)
			}
		}
		formula = next
	}
	return formula, assn
}

// listPropSimplify drops every clause containing literal and removes
// its complement from the clauses that remain.
func listPropSimplify(clauses [][]int, literal int) [][]int {
	var out [][]int
	for _, cls := range clauses {
		if containsLiteral(cls, literal) {
			continue
		}
		out = append(out, removeLiteral(cls, -literal))
	}
	return out
}

func listPropSelectLiteral(clauses [][]int, assignment map[int]bool) (int, bool) {
	for _, cls := range clauses {
		for _, l := range cls {
			if _, ok := assignment[abs(l)]; !ok {
				return l, true
			}
		}
	}
	return 0, false
}

func listPropSolve(clauses [][]int, assignment map[int]bool) (bool, map[int]bool) {
	// An emptied formula means every clause was satisfied and dropped.
	if len(clauses) == 0 {
		return true, assignment
	}
	if listPropContainsEmpty(clauses) {
		return false, assignment
	}
	if listPropIsSatisfied(clauses, assignment) {
		return true, assignment
	}

	formula, assn := listPropUnitPropagate(clauses, assignment)
	formula, assn = listPropPureLiterals(formula, assn)

	if listPropIsSatisfied(formula, assn) {
		return true, assn
	}
	if listPropContainsEmpty(formula) {
		return false, assignment
	}

	literal, ok := listPropSelectLiteral(formula, assn)
	if !ok {
		return false, assignment
	}

	trueAssn := cloneAssignment(assn)
	trueAssn[abs(literal)] = literal > 0
	if sat, final := listPropSolve(listPropSimplify(formula, literal), trueAssn); sat {
		return true, final
	}

	falseAssn := cloneAssignment(assn)
	falseAssn[abs(literal)] = literal < 0
	if sat, final := listPropSolve(listPropSimplify(formula, -literal), falseAssn); sat {
		return true, final
	}

	return false, assignment
}

func cloneAssignment(a map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func containsLiteral(cls []int, literal int) bool {
	for _, l := range cls {
		if l == literal {
			return true
		}
	}
	return false
}

func removeLiteral(cls []int, literal int) []int {
	var out []int
	for _, l := range cls {
		if l != literal {
			out = append(out, l)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
