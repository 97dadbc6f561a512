package perceptron

import "math/rand"

// Config configures one training run.
type Config struct {
	// MaxIterations is the hard cap on the number of passes over the batch.
	MaxIterations int
	// Epsilon is the stopping criterion: training stops once the mean
	// per-instance error rate of an epoch falls below it.
	Epsilon float32

	// Rand drives the per-epoch shuffle. A nil Rand gets a time-seeded
	// source; fix the seed here for reproducible runs.
	Rand *rand.Rand
	// Alloc is the source of the trainer's working buffers. A nil Alloc
	// allocates from the heap.
	Alloc Allocator
}

func DefaultConfig() Config {
	return Config{
		MaxIterations: 10,
		Epsilon:       0,
	}
}

func (c Config) IsValid() bool {
	return c.MaxIterations >= 1 && c.Epsilon >= 0
}
