package probehash

import "errors"

var (
	// ErrCapacityExhausted is returned by Insert when the probe sequence runs out of candidates
	// without meeting an empty or tombstone slot. It only happens when the load factor allows
	// the table to fill up completely (α >= 1) or when the hash cannot cover the table.
	ErrCapacityExhausted = errors.New("probehash: probe sequence exhausted, no free slot")
	// ErrGrowthLimit is returned when the table has to grow past the last capacity of its
	// CapacityTable.
	ErrGrowthLimit = errors.New("probehash: no capacity beyond the largest table entry")

	ErrInvalidLoadFactor    = errors.New("probehash: load factor must be greater than zero")
	ErrUnknownCapacity      = errors.New("probehash: capacity is not an entry of the capacity table")
	ErrInvalidCapacityTable = errors.New("probehash: invalid capacity table")
	ErrNilHasher            = errors.New("probehash: hash function is required")
	ErrNilEqual             = errors.New("probehash: equality predicate is required")
)
