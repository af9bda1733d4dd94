package wlsat

import (
	"fmt"
	"sort"
)

// Problem holds the clause store, Literal Index, and Variable Order
// produced once by the Initializer from a clause set. Clauses are
// created once and never copied; only their watch membership (recorded
// on each Clause and mirrored in the index) changes during search.
type Problem struct {
	clauses      []*Clause
	index        map[int][]*Clause // literal -> clauses currently watching it
	order        *VariableOrder
	initialUnits []int
	trivialUnsat bool
	vars         []int // every variable that appears in the input, ascending
}

// Clauses returns the problem's clause store.
func (p *Problem) Clauses() []*Clause { return p.clauses }

// newProblem is the Initializer (dictify): it validates clauses, counts
// literal frequency, builds the Variable Order, seeds the initial Unit
// Queue from unit clauses and pure literals, and installs each non-unit
// clause's first two literals as its watchers. The only malformed input
// it rejects is a clause containing the literal 0; an empty clause is
// not malformed, it just makes the problem unsatisfiable (trivialUnsat).
func newProblem(clauses [][]int) (*Problem, error) {
	for i, cls := range clauses {
		for _, l := range cls {
			if l == 0 {
				return nil, fmt.Errorf("wlsat: clause %d contains literal 0", i)
			}
		}
	}

	counts, seenLits := literalCounts(clauses)
	p := &Problem{
		index: make(map[int][]*Clause),
		order: newVariableOrder(counts, seenLits),
	}
	varSeen := make(map[int]bool, len(seenLits))
	for _, l := range seenLits {
		v := variable(l)
		if !varSeen[v] {
			varSeen[v] = true
			p.vars = append(p.vars, v)
		}
	}
	sort.Ints(p.vars)

	addedUnit := make(map[int]bool)
	addUnit := func(l int) {
		if !addedUnit[l] {
			addedUnit[l] = true
			p.initialUnits = append(p.initialUnits, l)
		}
	}
	// Pure-literal seeding: a literal whose complement never appears can
	// be satisfied unconditionally.
	for _, l := range seenLits {
		if counts[-l] == 0 {
			addUnit(l)
		}
	}

	seenClauses := make(map[string]bool)
	for _, cls := range clauses {
		if len(cls) == 0 {
			p.trivialUnsat = true
			continue
		}
		norm, tautology := normalizeClause(cls)
		if tautology {
			continue
		}
		if len(norm) == 1 {
			addUnit(norm[0])
			continue
		}
		key := clauseKey(norm)
		if seenClauses[key] {
			continue
		}
		seenClauses[key] = true
		c := &Clause{lits: norm, w0: norm[0], w1: norm[1]}
		p.clauses = append(p.clauses, c)
		p.index[c.w0] = append(p.index[c.w0], c)
		p.index[c.w1] = append(p.index[c.w1], c)
	}
	return p, nil
}

func clauseSatisfied(c *Clause, a *assignment) bool {
	for _, l := range c.lits {
		if a.satisfied(l) {
			return true
		}
	}
	return false
}

func unassignedLiterals(c *Clause, a *assignment) []int {
	var out []int
	for _, l := range c.lits {
		if a.isUnset(variable(l)) {
			out = append(out, l)
		}
	}
	return out
}

// nextWatcher picks the first of a clause's unassigned literals that
// isn't already one of its two current watchers. Returning none can
// only happen for a size-2 clause with both literals unassigned, a case
// the caller never reaches (it has already handled the unit and
// conflict cases before calling this).
func nextWatcher(c *Clause, free []int) (int, bool) {
	for _, l := range free {
		if !c.watches(l) {
			return l, true
		}
	}
	return 0, false
}

// setLiteral is the Propagator: it asserts l as true and repairs the
// watched-literal invariant for every clause currently watching l's
// complement. It walks a snapshot of that watch list so that a clause
// migrated to a new watcher mid-walk is never revisited, and on
// conflict leaves already-migrated clauses migrated and not-yet-visited
// clauses in place, so the watch invariant holds for every clause at
// every stopping point.
//
// It returns any newly discovered unit literals, the last new watcher
// installed during the walk (the LEFV hint; 0 means none), and whether
// a clause with zero unassigned literals was found.
func (p *Problem) setLiteral(a *assignment, l int) (units []int, lefv int, conflict bool) {
	a.assign(l)
	neg := opposite(l)
	watching := p.index[neg]
	var remaining []*Clause
	for i := 0; i < len(watching); i++ {
		c := watching[i]
		if clauseSatisfied(c, a) {
			remaining = append(remaining, c)
			continue
		}
		free := unassignedLiterals(c, a)
		switch len(free) {
		case 0:
			conflict = true
			remaining = append(remaining, watching[i:]...)
		case 1:
			units = append(units, free[0])
			remaining = append(remaining, c)
		default:
			if nw, ok := nextWatcher(c, free); ok {
				c.replaceWatch(neg, nw)
				p.index[nw] = append(p.index[nw], c)
				lefv = nw
			} else {
				remaining = append(remaining, c)
			}
		}
		if conflict {
			break
		}
	}
	p.index[neg] = remaining
	return units, lefv, conflict
}

// propagateUnits is the Unit-Propagation Loop: it repeatedly dequeues a
// literal and asserts it via setLiteral, appending any newly discovered
// units to the queue, until the queue drains or a conflict is found. A
// pending queue that ever contains both a literal and its complement is
// an immediate conflict, with no further propagation. On conflict every
// literal asserted during this call is rewound via the Trail before
// returning; the Literal Index is never rewound (an unassigned literal
// is always a legal watcher, so migrations need no undo).
func propagateUnits(p *Problem, a *assignment, seed []int, st *Stats) (trail []int, lefv int, hasLefv bool, conflict bool) {
	queue := append([]int(nil), seed...)
	queued := make(map[int]bool, len(seed))
	for _, l := range seed {
		if queued[-l] {
			conflict = true
		}
		queued[l] = true
	}
	for !conflict && len(queue) > 0 {
		l := queue[0]
		queue = queue[1:]
		delete(queued, l)
		if !a.isUnset(variable(l)) {
			// Already asserted by an earlier duplicate unit; a genuine
			// contradiction would already have tripped a queued
			// complement check when the later of the two was enqueued.
			continue
		}
		trail = append(trail, l)
		units, nw, isConf := p.setLiteral(a, l)
		if nw != 0 {
			lefv, hasLefv = nw, true
		}
		if isConf {
			conflict = true
			break
		}
		for _, u := range units {
			if queued[-u] {
				conflict = true
			}
			queued[u] = true
			queue = append(queue, u)
		}
	}
	if conflict {
		st.Conflicts++
		for _, l := range trail {
			a.unassign(variable(l))
		}
		return nil, 0, false, true
	}
	if n := len(a.lit); n > st.TrailHighWater {
		st.TrailHighWater = n
	}
	return trail, lefv, hasLefv, false
}

func (p *Problem) chooseBranch(a *assignment, lefv int, hasLefv bool) (int, bool) {
	if hasLefv && a.isUnset(variable(lefv)) {
		return lefv, true
	}
	return p.order.next(a)
}

// model reports, for every variable that appears in the input (in
// ascending order, for a deterministic and predictable public result),
// the signed literal that was asserted true for it.
func (p *Problem) model(a *assignment) []int {
	out := make([]int, 0, len(p.vars))
	for _, v := range p.vars {
		out = append(out, a.valueOf(v))
	}
	return out
}

// search is the Search Driver. It propagates the seed unit set; if
// that's a complete, conflict-free assignment it returns the model.
// Otherwise it picks a branching literal (LEFV-biased, falling back to
// the hint from the parent's single-literal assertion, then to the
// static Variable Order) and tries it as-is before its complement,
// recursing with each attempt's newly discovered units as the child's
// seed. A hint survives exactly one recursion level.
func (p *Problem) search(a *assignment, seed []int, hint int, hasHint bool, st *Stats) ([]int, bool) {
	trail, lefv, hasLefv, conflict := propagateUnits(p, a, seed, st)
	if conflict {
		return nil, false
	}
	if !hasLefv {
		lefv, hasLefv = hint, hasHint
	}
	branch, ok := p.chooseBranch(a, lefv, hasLefv)
	if !ok {
		return p.model(a), true
	}
	for _, candidate := range [2]int{branch, -branch} {
		st.Decisions++
		units, nw, isConf := p.setLiteral(a, candidate)
		if isConf {
			st.Conflicts++
			a.unassign(variable(candidate))
			continue
		}
		if n := len(a.lit); n > st.TrailHighWater {
			st.TrailHighWater = n
		}
		if m, ok := p.search(a, units, nw, nw != 0, st); ok {
			return m, true
		}
		a.unassign(variable(candidate))
	}
	for _, l := range trail {
		a.unassign(variable(l))
	}
	return nil, false
}
