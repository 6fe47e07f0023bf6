package probehash_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theflywheel/probehash"
)

func TestProbeDeterminism(t *testing.T) {
	hash := modHash(13)
	probers := map[string]func() probehash.Prober[int]{
		"Linear": func() probehash.Prober[int] {
			return new(probehash.LinearProber[int])
		},
		"DoubleHash": func() probehash.Prober[int] {
			return probehash.NewDoubleHashProber[int](probehash.IntHash[int])
		},
	}

	for name, newProber := range probers {
		t.Run(name, func(t *testing.T) {
			ht := newIntTable(t, newProber(), hash, probehash.WithLoadFactor(.75))
			reference := newProber()
			stored := make(map[int]struct{})
			rng := rand.New(rand.NewSource(7))

			for op := 0; op < 3000; op++ {
				key := rng.Intn(400)

				if rng.Intn(3) == 0 {
					ht.Remove(key)
					delete(stored, key)
					continue
				}

				if _, ok := stored[key]; ok {
					before, _ := ht.Probe(key)
					require.NoError(t, ht.Insert(key, op))
					after, _ := ht.Probe(key)
					require.Equal(t, before, after, "an update must not move the key")
					continue
				}

				capacity := uint64(ht.Capacity())
				occupied := make(map[uint64]struct{}, len(stored))
				for k := range stored {
					at, found := ht.Probe(k)
					require.True(t, found)
					occupied[uint64(at)] = struct{}{}
				}

				reference.Init(hash(key)%capacity, capacity, key)
				expected := -1
				for {
					loc, ok := reference.Next()
					if !ok {
						break
					}
					if _, taken := occupied[loc]; !taken {
						expected = int(loc)
						break
					}
				}

				require.NoError(t, ht.Insert(key, op))
				stored[key] = struct{}{}

				if uint64(ht.Capacity()) != capacity {
					// grown: every key was rehashed, the prediction no longer applies
					continue
				}

				at, found := ht.Probe(key)
				require.True(t, found)
				require.Equal(t, expected, at, "key %d", key)
			}
		})
	}
}

func TestRandomOperationsMatchMap(t *testing.T) {
	const alpha = .75
	probers := map[string]probehash.Prober[string]{
		"Linear":     new(probehash.LinearProber[string]),
		"DoubleHash": probehash.NewDoubleHashProber[string](probehash.FNV1aString),
	}

	for name, prober := range probers {
		t.Run(name, func(t *testing.T) {
			ht := newStringTable(t, prober, probehash.WithLoadFactor(alpha))
			reference := make(map[string]int)
			rng := rand.New(rand.NewSource(42))
			capacity := ht.Capacity()

			for op := 0; op < 20000; op++ {
				key := "key-" + strconv.Itoa(rng.Intn(3000))

				switch rng.Intn(4) {
				case 0:
					_, present := reference[key]
					require.Equal(t, present, ht.Remove(key))
					delete(reference, key)
				case 1:
					value, found := ht.Get(key)
					want, present := reference[key]
					require.Equal(t, present, found)
					require.Equal(t, want, value)
				default:
					_, present := reference[key]
					before := ht.Stats()
					require.NoError(t, ht.Insert(key, op))
					reference[key] = op

					// only a new key at or above the load factor grows the table
					grown := ht.Capacity() != before.Capacity
					require.Equal(t, !present && before.Load >= alpha, grown,
						"key %q at load %.4f", key, before.Load)
				}

				require.Equal(t, len(reference), ht.Size())

				// capacity only ever moves forward through the table
				if ht.Capacity() != capacity {
					next, err := probehash.DefaultCapacities.Next(uint64(capacity))
					require.NoError(t, err)
					require.Equal(t, int(next), ht.Capacity())
					capacity = ht.Capacity()
				}
			}

			seen := make(map[string]int, len(reference))
			ht.Range(func(k string, v int) bool {
				_, dup := seen[k]
				require.False(t, dup, "key %q stored twice", k)
				seen[k] = v
				return true
			})
			require.Equal(t, reference, seen)
		})
	}
}
