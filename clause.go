package wlsat

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is an ordered, content-immutable sequence of distinct literals.
// The only thing that ever changes about a clause over the life of a
// solve is which two of its literals currently watch it. Those two
// watcher literal values are stored directly on the record (rather than
// as positions into lits, or derived by scanning a watch list) so that
// "does this clause already watch L" is an O(1) field comparison instead
// of an O(k) scan.
type Clause struct {
	lits   []int
	w0, w1 int
}

// Lits returns the clause's literals in their original order.
func (c *Clause) Lits() []int { return c.lits }

// Len reports the number of literals in the clause.
func (c *Clause) Len() int { return len(c.lits) }

func (c *Clause) watches(l int) bool {
	return c.w0 == l || c.w1 == l
}

// replaceWatch swaps watcher literal old for new on the clause record.
// It does not touch the Literal Index; callers are responsible for
// moving the clause between watch lists.
func (c *Clause) replaceWatch(old, new int) {
	if c.w0 == old {
		c.w0 = new
	} else {
		c.w1 = new
	}
}

// normalizeClause removes duplicate literals from lits and reports
// whether the clause is a tautology: one that contains both a literal
// and its complement, and is therefore satisfied unconditionally. A
// tautological clause contributes no constraint and is dropped rather
// than rejected as malformed input.
func normalizeClause(lits []int) (out []int, tautology bool) {
	seen := make(map[int]bool, len(lits))
	out = make([]int, 0, len(lits))
	for _, l := range lits {
		if seen[-l] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, false
}

// clauseKey returns a canonical string key for an already-normalized
// clause's literal set. It is used to de-duplicate identical clauses
// appearing more than once in the input so that each distinct clause is
// installed as a watcher exactly once and every non-unit clause appears
// in exactly two watch lists.
func clauseKey(lits []int) string {
	sorted := append([]int(nil), lits...)
	sort.Ints(sorted)
	var b strings.Builder
	for i, l := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(l))
	}
	return b.String()
}
