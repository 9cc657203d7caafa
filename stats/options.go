package stats

import "go.uber.org/zap"

// defaultSeed is used when no WithSeed option is given.
const defaultSeed int64 = 1

// Option customizes a Run by mutating its config.
type Option func(*config)

type config struct {
	seed    int64
	workers int
	logger  *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:    defaultSeed,
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the base seed from which every trial's RNG is derived.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithWorkers sets the number of goroutines running trials.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic("stats: WithWorkers(workers<1)")
	}
	return func(c *config) {
		c.workers = workers
	}
}

// WithLogger routes trial and run logs to logger. Panics on nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}
