package probehash

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// Entry is a key-value pair stored in a Table
type Entry[K, V any] struct {
	Key   K
	Value V
}

// slot is one cell of the backing array. Only occupied slots hold a meaningful entry.
type slot[K, V any] struct {
	state slotState
	entry Entry[K, V]
}

// bury turns an occupied slot into a tombstone and releases the pair it held
func (s *slot[K, V]) bury() {
	var zero Entry[K, V]
	s.entry = zero
	s.state = slotTombstone
}
