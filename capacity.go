package probehash

import (
	"fmt"
	"math/big"
	"sort"
)

var defaultSizes = []uint64{
	11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853, 25717, 51437, 102877,
	205759, 411527, 823117, 1646237, 3292489, 6584983, 13169977, 26339969, 52679969,
	105359971, 210719881, 421439783, 842879579, 1685759167,
}

var defaultModuli = []uint64{
	7, 19, 43, 89, 193, 389, 787, 1583, 3191, 6397, 12841, 25703, 51431, 102871,
	205721, 411503, 823051, 1646221, 3292463, 6584957, 13169963, 26339921, 52679927,
	105359939, 210719881, 421439749, 842879563, 1685759113,
}

// DefaultCapacities is the growth sequence used unless WithCapacities says otherwise.
// Its last entry is the hard ceiling of a table: growing past it fails with ErrGrowthLimit.
var DefaultCapacities = mustCapacityTable(defaultSizes, defaultModuli)

// CapacityTable is an ascending sequence of prime capacities together with the companion
// primes the double-hash prober derives its step from. A table only ever takes capacities
// from this sequence, in order.
type CapacityTable struct {
	sizes  []uint64
	moduli []uint64
}

// NewCapacityTable validates and copies the given sequences. Both must be non-empty and
// strictly ascending, and every size must be prime, so that any probe step below the size
// walks through every slot.
func NewCapacityTable(sizes, moduli []uint64) (*CapacityTable, error) {
	if len(sizes) == 0 || len(moduli) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidCapacityTable)
	}

	if err := checkAscending(sizes); err != nil {
		return nil, fmt.Errorf("%w: sizes: %v", ErrInvalidCapacityTable, err)
	}
	if err := checkAscending(moduli); err != nil {
		return nil, fmt.Errorf("%w: moduli: %v", ErrInvalidCapacityTable, err)
	}

	for _, size := range sizes {
		if !new(big.Int).SetUint64(size).ProbablyPrime(0) {
			return nil, fmt.Errorf("%w: size %d is not prime", ErrInvalidCapacityTable, size)
		}
	}

	return &CapacityTable{
		sizes:  append([]uint64(nil), sizes...),
		moduli: append([]uint64(nil), moduli...),
	}, nil
}

func mustCapacityTable(sizes, moduli []uint64) *CapacityTable {
	ct, err := NewCapacityTable(sizes, moduli)
	if err != nil {
		panic(err)
	}

	return ct
}

func checkAscending(seq []uint64) error {
	if seq[0] == 0 {
		return fmt.Errorf("zero entry")
	}

	for i := 1; i < len(seq); i++ {
		if seq[i] <= seq[i-1] {
			return fmt.Errorf("entry %d (%d) does not exceed its predecessor (%d)", i, seq[i], seq[i-1])
		}
	}

	return nil
}

// First returns the smallest capacity
func (c *CapacityTable) First() uint64 {
	return c.sizes[0]
}

// Last returns the largest capacity
func (c *CapacityTable) Last() uint64 {
	return c.sizes[len(c.sizes)-1]
}

// Len returns the number of capacities in the sequence
func (c *CapacityTable) Len() int {
	return len(c.sizes)
}

// Contains reports whether capacity is an entry of the sequence
func (c *CapacityTable) Contains(capacity uint64) bool {
	i := sort.Search(len(c.sizes), func(i int) bool { return c.sizes[i] >= capacity })
	return i < len(c.sizes) && c.sizes[i] == capacity
}

// Next returns the capacity following current. It fails with ErrGrowthLimit when current
// is the last entry and with ErrUnknownCapacity when current is not an entry at all.
func (c *CapacityTable) Next(current uint64) (uint64, error) {
	i := sort.Search(len(c.sizes), func(i int) bool { return c.sizes[i] >= current })
	switch {
	case i == len(c.sizes) || c.sizes[i] != current:
		return 0, fmt.Errorf("%w: %d", ErrUnknownCapacity, current)
	case i == len(c.sizes)-1:
		return 0, fmt.Errorf("%w: %d", ErrGrowthLimit, current)
	}

	return c.sizes[i+1], nil
}

// Modulus returns the companion prime for a capacity: the largest one strictly below it,
// or the smallest one if none is below.
func (c *CapacityTable) Modulus(capacity uint64) uint64 {
	i := sort.Search(len(c.moduli), func(i int) bool { return c.moduli[i] >= capacity })
	if i == 0 {
		return c.moduli[0]
	}

	return c.moduli[i-1]
}
