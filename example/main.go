package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/theflywheel/probehash"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Double hashing over string keys, growth events printed to stdout
	ht, err := probehash.New[string, int](
		probehash.NewDoubleHashProber[string](probehash.FNV1aString),
		probehash.StringHash,
		probehash.Equals[string],
		probehash.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Table created successfully")

	// Insert some data
	for i := 0; i < 10; i++ {
		if err := ht.Insert(fmt.Sprintf("key-%d", i), i*100); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	fmt.Printf("Inserted 10 key-value pairs, capacity is now %d\n", ht.Capacity())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if value, found := ht.Get(key); found {
			fmt.Printf("%s => Value %d\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	if err := ht.Insert("key-2", 999); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}
	if value, found := ht.Get("key-2"); found {
		fmt.Printf("Updated key-2 => Value %d\n", value)
	}

	// Remove a value and show where its neighbours live
	ht.Remove("key-4")
	for _, key := range []string{"key-3", "key-4", "key-5"} {
		if at, found := ht.Probe(key); found {
			fmt.Printf("%s lives in slot %d\n", key, at)
		} else {
			fmt.Printf("%s is gone\n", key)
		}
	}

	stats := ht.Stats()
	fmt.Printf("Size=%d Tombstones=%d Capacity=%d Load=%.2f Grows=%d\n",
		stats.Size, stats.Tombstones, stats.Capacity, stats.Load, stats.Grows)

	fmt.Println("Example completed successfully")
}
