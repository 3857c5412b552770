// Package randpick implements bounded uniform random selection: draws from
// the closed range [1, bound] over an injectable entropy source.
package randpick

import "errors"

// ErrInvalidBound indicates a bound below 1. The bound is an inclusive upper
// limit, so the smallest valid range is [1, 1].
var ErrInvalidBound = errors.New("bound must be at least 1")

// ErrInvalidCount indicates a draw count below 1.
var ErrInvalidCount = errors.New("count must be at least 1")

// ErrCountExceedsBound indicates a unique sample larger than the range it is
// drawn from.
var ErrCountExceedsBound = errors.New("count must not exceed bound")

// Every value in [1, maxShuffleBound] is materialized for a unique sample;
// larger bounds fall back to rejection sampling over a seen set.
const maxShuffleBound = 1 << 16

// Picker draws uniformly distributed integers from [1, bound]. Each call is
// independent and stateless from the caller's perspective; consecutive draws
// carry no uniqueness guarantee. A Picker is safe for concurrent use whenever
// its Source is.
type Picker struct {
	src Source
}

// New creates a Picker over the given entropy source.
func New(src Source) *Picker {
	return &Picker{src: src}
}

// NewSeeded creates a deterministic Picker over a MathSource with the given
// seed. Two seeded Pickers with the same seed produce identical draws.
func NewSeeded(seed int64) *Picker {
	return New(NewMathSource(seed))
}

// NewCrypto creates a Picker over the system entropy pool.
func NewCrypto() *Picker {
	return New(NewCryptoSource())
}

// Pick returns a uniformly distributed integer r with 1 <= r <= bound.
// A bound below 1 fails with ErrInvalidBound; the bound is never clamped.
// Pick(1) always returns 1.
func (p *Picker) Pick(bound int) (int, error) {
	if bound < 1 {
		return 0, ErrInvalidBound
	}
	return p.src.Intn(bound) + 1, nil
}

// PickN returns count independent draws from [1, bound]. Duplicates are
// allowed; use SampleUnique for distinct values.
func (p *Picker) PickN(bound, count int) ([]int, error) {
	if bound < 1 {
		return nil, ErrInvalidBound
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}
	draws := make([]int, count)
	for i := range draws {
		draws[i] = p.src.Intn(bound) + 1
	}
	return draws, nil
}

// SampleUnique returns count distinct values from [1, bound] in draw order.
// count must not exceed bound.
func (p *Picker) SampleUnique(bound, count int) ([]int, error) {
	if bound < 1 {
		return nil, ErrInvalidBound
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if count > bound {
		return nil, ErrCountExceedsBound
	}

	if bound <= maxShuffleBound {
		// Partial Fisher-Yates: after i swaps the first i positions hold a
		// uniform i-subset in draw order.
		vals := make([]int, bound)
		for i := range vals {
			vals[i] = i + 1
		}
		for i := 0; i < count; i++ {
			j := i + p.src.Intn(bound-i)
			vals[i], vals[j] = vals[j], vals[i]
		}
		out := make([]int, count)
		copy(out, vals[:count])
		return out, nil
	}

	seen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	for len(out) < count {
		v := p.src.Intn(bound) + 1
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

var defaultPicker = NewCrypto()

// Pick draws from [1, bound] using a shared crypto-sourced Picker.
func Pick(bound int) (int, error) {
	return defaultPicker.Pick(bound)
}
