// Package stats holds small ambient metrics helpers used by the CLI,
// kept separate from the core solver since nothing in search depends on
// them.
package stats

// DecayingMean tracks an exponentially weighted running mean: each new
// observation contributes a fixed fraction alpha of its value, and the
// influence of older observations fades geometrically.
type DecayingMean struct {
	alpha float64
	mean  float64
	n     int
}

// NewDecayingMean returns a mean with the given per-observation weight
// alpha, in (0, 1]. Larger alpha reacts faster to recent observations.
func NewDecayingMean(alpha float64) *DecayingMean {
	return &DecayingMean{alpha: alpha}
}

// Observe folds x into the mean. The first observation seeds the mean
// directly.
func (m *DecayingMean) Observe(x float64) {
	m.n++
	if m.n == 1 {
		m.mean = x
		return
	}
	m.mean += m.alpha * (x - m.mean)
}

// Mean returns the current weighted mean, or zero before any
// observation.
func (m *DecayingMean) Mean() float64 { return m.mean }

// Count reports how many observations have been folded in.
func (m *DecayingMean) Count() int { return m.n }
