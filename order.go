package wlsat

import "sort"

// VariableOrder is the static fallback branching order: variables ranked
// by descending initial literal frequency, with only the more frequently
// occurring polarity retained per variable, ties broken by first-seen
// order. It is computed once at initialization and never changes during
// search; the only thing that overrides it at branch time is the LEFV
// hint produced by propagation.
type VariableOrder struct {
	lits []int
}

// literalCounts counts every literal's occurrences across clauses and
// returns the distinct literals in first-seen order, which doubles as
// the tie-break key for equal counts.
func literalCounts(clauses [][]int) (counts map[int]int, seenLits []int) {
	counts = make(map[int]int)
	for _, cls := range clauses {
		for _, l := range cls {
			if _, ok := counts[l]; !ok {
				seenLits = append(seenLits, l)
			}
			counts[l]++
		}
	}
	return counts, seenLits
}

// newVariableOrder walks the counted literals in descending frequency
// (ties broken by first-seen, via a stable sort over the already
// first-seen-ordered seenLits) and keeps a literal only if its
// complement hasn't already been placed.
func newVariableOrder(counts map[int]int, seenLits []int) *VariableOrder {
	ranked := append([]int(nil), seenLits...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	var order []int
	placed := make(map[int]bool, len(ranked))
	for _, l := range ranked {
		if placed[-l] {
			continue
		}
		order = append(order, l)
		placed[l] = true
	}
	return &VariableOrder{lits: order}
}

// next scans the order for the first variable that is still unset under
// a, returning the literal this order retained for that variable.
func (vo *VariableOrder) next(a *assignment) (int, bool) {
	for _, l := range vo.lits {
		if a.isUnset(variable(l)) {
			return l, true
		}
	}
	return 0, false
}
