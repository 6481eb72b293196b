package octree

const (
	// Depth past which cells stop splitting and keep accumulating points
	DefaultMaxLevel = 8

	// Squared distance under which a candidate counts as the query point itself
	DefaultSelfEpsilon = 1e-4
)

// Options for nearest point queries
type FindOptions struct {
	// Skip candidates closer than the self epsilon to the query point
	ExcludeSelf bool
}

type indexConfig struct {
	maxLevel    int
	selfEpsilon float64
}

type IndexOption func(*indexConfig)

// Sets the level at which cells stop splitting. Negative values are clamped to 0.
func WithMaxLevel(level int) IndexOption {
	return func(c *indexConfig) {
		if level < 0 {
			level = 0
		}
		c.maxLevel = level
	}
}

// Sets the squared distance used by FindOptions.ExcludeSelf
func WithSelfEpsilon(epsilon float64) IndexOption {
	return func(c *indexConfig) {
		c.selfEpsilon = epsilon
	}
}

func newIndexConfig(opts []IndexOption) *indexConfig {
	config := &indexConfig{
		maxLevel:    DefaultMaxLevel,
		selfEpsilon: DefaultSelfEpsilon,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}
