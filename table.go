package probehash

import (
	"fmt"
	"log/slog"
)

// Table is an open-addressing hash table. Collisions are resolved by the Prober given at
// construction, removed entries leave tombstones behind, and the capacity grows through the
// entries of a CapacityTable, never shrinking.
//
// A Table is not safe for concurrent use.
type Table[K, V any] struct {
	slots      []slot[K, V]
	size       int
	tombstones int
	grows      int

	prober     Prober[K]
	hash       Hasher[K]
	equal      Equal[K]
	loadFactor float64
	capacities *CapacityTable
	logger     *slog.Logger
}

// Stats is a snapshot of the table's occupancy
type Stats struct {
	Size       int
	Tombstones int
	Capacity   int
	// Load is (Size + Tombstones) / Capacity, the ratio compared against the load factor.
	Load  float64
	Grows int
}

// New creates an empty table. A nil prober means linear probing.
func New[K, V any](prober Prober[K], hash Hasher[K], equal Equal[K], opts ...Option) (*Table[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}
	if equal == nil {
		return nil, ErrNilEqual
	}
	if prober == nil {
		prober = new(LinearProber[K])
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// written this way so that NaN is rejected too
	if !(cfg.LoadFactor > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, cfg.LoadFactor)
	}
	if cfg.Capacities == nil {
		cfg.Capacities = DefaultCapacities
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(discardHandler{})
	}

	capacity := cfg.InitialCapacity
	if capacity == 0 {
		capacity = cfg.Capacities.First()
	}
	if !cfg.Capacities.Contains(capacity) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCapacity, capacity)
	}

	if tp, ok := prober.(tableProber); ok {
		if err := tp.attach(cfg.Capacities); err != nil {
			return nil, err
		}
	}

	return &Table[K, V]{
		slots:      make([]slot[K, V], capacity),
		prober:     prober,
		hash:       hash,
		equal:      equal,
		loadFactor: cfg.LoadFactor,
		capacities: cfg.Capacities,
		logger:     cfg.Logger,
	}, nil
}

// Insert adds a key-value pair, or replaces the value if the key is already present.
// Replacing never grows the table. Adding a new key first grows the table if the load
// factor has been reached, then places the key in the first empty or tombstone slot of
// its probe sequence.
func (t *Table[K, V]) Insert(key K, value V) error {
	at, free := t.locate(key)
	if at >= 0 {
		t.slots[at].entry.Value = value
		return nil
	}

	if t.overloaded() {
		if err := t.grow(); err != nil {
			t.logger.Error("failed to grow table",
				slog.Int("capacity", len(t.slots)), slog.Int("size", t.size), slog.Any("error", err))
			return fmt.Errorf("resize failed: %w", err)
		}

		_, free = t.locate(key)
	}

	if free < 0 {
		t.logger.Error("no free slot in probe sequence",
			slog.Int("capacity", len(t.slots)), slog.Int("size", t.size), slog.Float64("load_factor", t.loadFactor))
		return ErrCapacityExhausted
	}

	s := &t.slots[free]
	if s.state == slotTombstone {
		t.tombstones--
	}
	s.state = slotOccupied
	s.entry = Entry[K, V]{Key: key, Value: value}
	t.size++
	return nil
}

// Find returns the stored pair for key
func (t *Table[K, V]) Find(key K) (Entry[K, V], bool) {
	at, _ := t.locate(key)
	if at < 0 {
		return Entry[K, V]{}, false
	}

	return t.slots[at].entry, true
}

// Get returns the value stored for key
func (t *Table[K, V]) Get(key K) (value V, found bool) {
	at, _ := t.locate(key)
	if at < 0 {
		return value, false
	}

	return t.slots[at].entry.Value, true
}

// Remove deletes key, leaving a tombstone in its slot. Removing an absent key is a no-op
// and returns false.
func (t *Table[K, V]) Remove(key K) bool {
	at, _ := t.locate(key)
	if at < 0 {
		return false
	}

	t.slots[at].bury()
	t.size--
	t.tombstones++
	return true
}

// Probe returns the index of the slot currently holding key
func (t *Table[K, V]) Probe(key K) (int, bool) {
	at, _ := t.locate(key)
	return at, at >= 0
}

// Size returns the number of stored pairs
func (t *Table[K, V]) Size() int {
	return t.size
}

// Empty reports whether the table holds no pairs
func (t *Table[K, V]) Empty() bool {
	return t.size == 0
}

// Capacity returns the current number of slots
func (t *Table[K, V]) Capacity() int {
	return len(t.slots)
}

// Range calls fn for every stored pair in slot order until fn returns false.
// fn must not modify the table.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}

		if !fn(t.slots[i].entry.Key, t.slots[i].entry.Value) {
			return
		}
	}
}

// Clear removes every pair and tombstone. The capacity is kept.
func (t *Table[K, V]) Clear() {
	clear(t.slots)
	t.size = 0
	t.tombstones = 0
}

// Stats returns the current occupancy of the table
func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Size:       t.size,
		Tombstones: t.tombstones,
		Capacity:   len(t.slots),
		Load:       t.load(),
		Grows:      t.grows,
	}
}

// locate walks the probe sequence of key. If key is stored, at is its index. Otherwise
// at is -1 and free is the first empty or tombstone slot met on the way, or -1 if the
// sequence ran out without meeting one. An empty slot ends the walk: insertion always
// fills the first free slot it meets, so key cannot lie further along.
func (t *Table[K, V]) locate(key K) (at, free int) {
	free = -1
	capacity := uint64(len(t.slots))
	t.prober.Init(t.hash(key)%capacity, capacity, key)

	for {
		loc, ok := t.prober.Next()
		if !ok {
			return -1, free
		}

		s := &t.slots[loc]
		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = int(loc)
			}
			return -1, free
		case slotTombstone:
			if free < 0 {
				free = int(loc)
			}
		case slotOccupied:
			if t.equal(s.entry.Key, key) {
				return int(loc), free
			}
		}
	}
}

func (t *Table[K, V]) load() float64 {
	return float64(t.size+t.tombstones) / float64(len(t.slots))
}

func (t *Table[K, V]) overloaded() bool {
	return t.load() >= t.loadFactor
}

// grow moves every stored pair into a fresh slot array of the next capacity. Tombstones
// are not carried over. On failure the table is left as it was.
func (t *Table[K, V]) grow() error {
	from := uint64(len(t.slots))
	to, err := t.capacities.Next(from)
	if err != nil {
		return err
	}

	t.logger.Debug("growing table",
		slog.Uint64("from", from), slog.Uint64("to", to),
		slog.Int("entries", t.size), slog.Int("tombstones", t.tombstones))

	slots := make([]slot[K, V], to)
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}

		key := t.slots[i].entry.Key
		t.prober.Init(t.hash(key)%to, to, key)

		placed := false
		for {
			loc, ok := t.prober.Next()
			if !ok {
				break
			}

			if slots[loc].state == slotEmpty {
				slots[loc] = t.slots[i]
				placed = true
				break
			}
		}

		if !placed {
			return fmt.Errorf("%w: rehashing into capacity %d", ErrCapacityExhausted, to)
		}
	}

	t.slots = slots
	t.tombstones = 0
	t.grows++
	return nil
}
