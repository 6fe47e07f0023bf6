/*
Package probehash provides an open-addressing hash table with pluggable probing.

Table maps unique keys to values in a single slot array. Collisions are resolved by a
Prober, which enumerates the candidate slots for a key, and the table grows through a
fixed sequence of prime capacities so that bucket counts are always predictable.

Basic usage:

	import "github.com/theflywheel/probehash"

	// Linear probing over string keys
	ht, err := probehash.New[string, int](nil, probehash.StringHash, probehash.Equals[string])
	if err != nil {
		log.Fatal(err)
	}

	// Insert data
	if err := ht.Insert("one", 1); err != nil {
		log.Fatal(err)
	}

	// Retrieve data
	if v, ok := ht.Get("one"); ok {
		fmt.Println("Value:", v)
	}

	// Double hashing, growing at 70% load
	dh, err := probehash.New[string, int](
		probehash.NewDoubleHashProber[string](probehash.FNV1aString),
		probehash.StringHash, probehash.Equals[string],
		probehash.WithLoadFactor(0.7),
	)

Features:

  - Generic keys and values with caller-supplied hash and equality functions
  - Linear probing and double hashing behind one Prober interface
  - Tombstones on removal, so keys inserted after a collision stay reachable
  - Growth through a fixed table of prime capacities (11, 23, 47, 97, ...), never shrinking
  - Default hashers built on xxHash64 and FNV-1a
  - Optional structured logging of growth through log/slog

Implementation Details:

Every slot is empty, occupied or a tombstone. Lookups start at hash(key) % capacity and
follow the probe sequence, passing over tombstones, until they meet the key, an empty slot,
or the end of the sequence. Insertion places a new key in the first empty or tombstone slot
of its sequence.

Before a new key is placed, the table checks (entries + tombstones) / capacity against the
load factor (0.4 by default). When it has been reached, a fresh slot array of the next
capacity is allocated and every stored pair is rehashed into it; tombstones are dropped.

The double-hash step for a key is m - h2(key) % m, where m is the companion prime just below
the current capacity (7 for 11, 43 for 47, and so on). Since every capacity is prime, any such
step visits every slot before the sequence ends.

A load factor of 1 or more lets the table fill up completely; inserting a new key into a full
table then fails with ErrCapacityExhausted. Growing past the last capacity fails with
ErrGrowthLimit.
*/
package probehash
