package probehash

import "fmt"

// Prober enumerates the candidate slots for a key. Init resets it for a new operation;
// Next then yields at most capacity indices, all within [0, capacity), and reports false
// once the sequence is exhausted.
type Prober[K any] interface {
	Init(start, capacity uint64, key K)
	Next() (uint64, bool)
}

// tableProber is implemented by probers that must be checked or configured against the
// table they serve.
type tableProber interface {
	attach(capacities *CapacityTable) error
}

// LinearProber visits start, start+1, start+2, ... modulo the capacity. The zero value is
// ready to use.
type LinearProber[K any] struct {
	start, capacity, probes uint64
}

func (p *LinearProber[K]) Init(start, capacity uint64, _ K) {
	p.start = start
	p.capacity = capacity
	p.probes = 0
}

func (p *LinearProber[K]) Next() (uint64, bool) {
	if p.probes >= p.capacity {
		return 0, false
	}

	loc := (p.start + p.probes) % p.capacity
	p.probes++
	return loc, true
}

// DoubleHashProber visits start, start+step, start+2*step, ... modulo the capacity, where
// the step is derived from a secondary hash of the key:
//
//	step = m - secondary(key) % m
//
// and m is the companion prime of the capacity (see CapacityTable.Modulus). With a prime
// capacity and a step below it, the sequence is a permutation of all slots.
//
// A prober needs a secondary hash, so the zero value is rejected by New. Unless WithModuli
// was called, the prober takes its companion primes from the capacity table of the Table
// it is handed to, or from DefaultCapacities when used on its own.
type DoubleHashProber[K any] struct {
	secondary  Hasher[K]
	capacities *CapacityTable

	loc, capacity, step, stride, probes uint64
}

// NewDoubleHashProber returns a prober stepping by the given secondary hash
func NewDoubleHashProber[K any](secondary Hasher[K]) *DoubleHashProber[K] {
	return &DoubleHashProber[K]{secondary: secondary}
}

// WithModuli makes the prober take its companion primes from the given table
func (p *DoubleHashProber[K]) WithModuli(capacities *CapacityTable) *DoubleHashProber[K] {
	p.capacities = capacities
	return p
}

// attach is called by New before the prober serves a table
func (p *DoubleHashProber[K]) attach(capacities *CapacityTable) error {
	if p.secondary == nil {
		return fmt.Errorf("%w: double hash prober has no secondary hash", ErrNilHasher)
	}
	if p.capacities == nil {
		p.capacities = capacities
	}
	return nil
}

func (p *DoubleHashProber[K]) Init(start, capacity uint64, key K) {
	p.loc = start % capacity
	p.capacity = capacity
	p.probes = 0

	moduli := p.capacities
	if moduli == nil {
		moduli = DefaultCapacities
	}

	modulus := moduli.Modulus(capacity)
	p.step = modulus - p.secondary(key)%modulus
	if p.step%capacity == 0 {
		// a step equal to the capacity would revisit start forever
		p.step = 1
	}
	p.stride = p.step % capacity
}

func (p *DoubleHashProber[K]) Next() (uint64, bool) {
	if p.probes >= p.capacity {
		return 0, false
	}

	loc := p.loc
	// both terms are below the capacity, so the sum cannot wrap for capacities under 2^63
	p.loc = (p.loc + p.stride) % p.capacity
	p.probes++
	return loc, true
}

// Step returns the step computed by the last Init
func (p *DoubleHashProber[K]) Step() uint64 {
	return p.step
}
