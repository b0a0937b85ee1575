package scale

// Ordinal maps the i-th domain value to the i-th range value, cycling
// through the range if it is shorter than the domain.
type Ordinal[D comparable, R any] struct {
	domain []D
	index  map[D]int
	rng    []R
}

// NewOrdinal returns an ordinal scale with empty domain and range.
func NewOrdinal[D comparable, R any]() Ordinal[D, R] {
	return Ordinal[D, R]{index: map[D]int{}}
}

// WithDomain sets the domain; duplicates are dropped.
func (s Ordinal[D, R]) WithDomain(values ...D) Ordinal[D, R] {
	s.domain, s.index = dedupe(values)
	return s
}

func (s Ordinal[D, R]) WithRange(values ...R) Ordinal[D, R] {
	s.rng = append([]R(nil), values...)
	return s
}

func (s Ordinal[D, R]) Domain() []D { return append([]D(nil), s.domain...) }
func (s Ordinal[D, R]) Range() []R  { return append([]R(nil), s.rng...) }

// Scale looks up v. The boolean is false for values outside the domain
// and for an empty range.
func (s Ordinal[D, R]) Scale(v D) (R, bool) {
	var zero R
	i, ok := s.index[v]
	if !ok || len(s.rng) == 0 {
		return zero, false
	}
	return s.rng[i%len(s.rng)], true
}
