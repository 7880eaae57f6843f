// config.go — functional options resolving into an immutable builderConfig,
// mirroring lvlath's builder.BuilderOption / newBuilderConfig pattern.
package builder

import "github.com/waypointlab/pursuit/core"

// IntRange is an inclusive [Min,Max] bound, used for leaf_range (spec.md §6
// Tunables) and the k-nearest-neighbour count range.
type IntRange struct{ Min, Max int }

// FloatRange is an inclusive [Min,Max] bound for edge weights.
type FloatRange struct{ Min, Max float64 }

// Option customizes a builderConfig before BuildGraph runs. Later options
// override earlier ones, exactly as lvlath's BuilderOption documents.
type Option func(cfg *builderConfig)

// builderConfig holds every tunable from spec.md §6 that governs topology
// construction. It is resolved once per BuildGraph call and never mutated
// afterward.
type builderConfig struct {
	nodeCount        int
	leafRange        IntRange
	edgeWeightRange  FloatRange
	kRange           IntRange
	seed             int64
	ringRadiusMin    float64
	ringRadiusMax    float64
	jitter           float64
	maxSeedAttempts  int
	strictLeafRange  bool
}

// defaultBuilderConfig returns spec.md §6's documented defaults:
// node_count=28, leaf_range=[8,12], edge_weight_range=[1,10].
func defaultBuilderConfig() builderConfig {
	return builderConfig{
		nodeCount:       28,
		leafRange:       IntRange{8, 12},
		edgeWeightRange: FloatRange{core.MinEdgeWeight, core.MaxEdgeWeight},
		kRange:          IntRange{3, 6},
		seed:            1,
		ringRadiusMin:   180,
		ringRadiusMax:   420,
		jitter:          35,
		maxSeedAttempts: 8,
	}
}

// WithNodeCount overrides node_count (default 28).
func WithNodeCount(n int) Option {
	return func(cfg *builderConfig) { cfg.nodeCount = n }
}

// WithLeafRange overrides leaf_range (default [8,12]).
func WithLeafRange(r IntRange) Option {
	return func(cfg *builderConfig) { cfg.leafRange = r }
}

// WithEdgeWeightRange overrides edge_weight_range (default [1,10]).
func WithEdgeWeightRange(r FloatRange) Option {
	return func(cfg *builderConfig) { cfg.edgeWeightRange = r }
}

// WithNeighbourRange overrides the per-node k-nearest-neighbour count range
// (spec.md §4.2 step 2 documents k ∈ [3,6]).
func WithNeighbourRange(r IntRange) Option {
	return func(cfg *builderConfig) { cfg.kRange = r }
}

// WithSeed sets the deterministic RNG seed threaded through layout, wiring,
// and repair.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.seed = seed }
}

// WithRingRadius overrides the ring layout's jittered radius band.
func WithRingRadius(min, max float64) Option {
	return func(cfg *builderConfig) { cfg.ringRadiusMin, cfg.ringRadiusMax = min, max }
}

// WithMaxSeedAttempts bounds how many fresh seeds BuildGraph tries before
// giving up with ErrDisconnected (default 8).
func WithMaxSeedAttempts(n int) Option {
	return func(cfg *builderConfig) { cfg.maxSeedAttempts = n }
}

// WithStrictLeafRange makes BuildGraph return ErrUnsatisfiable instead of
// logging and accepting the nearest feasible leaf count (spec.md §7's
// default, more forgiving, disposition).
func WithStrictLeafRange() Option {
	return func(cfg *builderConfig) { cfg.strictLeafRange = true }
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
