// config.go — session tunables, functional options mirroring
// builder.Option / builder.builderConfig (spec.md §6).
package session

import (
	"github.com/waypointlab/pursuit/builder"
	"github.com/waypointlab/pursuit/policy"
)

// Option customizes a Config before Start runs.
type Option func(cfg *Config)

// Config holds every tunable spec.md §6 lists under "Tunables".
type Config struct {
	NodeCount       int
	LeafRange       builder.IntRange
	EdgeWeightRange builder.FloatRange

	ContactDamage     int
	ContactCooldownMS int64
	RunnerHP          int
	PursuerHP         int

	MinSpawnDistance float64
	QueueDepth       int

	// CadenceOverridesMS overrides pursuer.CadenceMS's per-policy defaults
	// (spec.md §6's cadence_ms tunable). A policy absent from the map keeps
	// its hardcoded default.
	CadenceOverridesMS map[policy.Policy]int64
}

// DefaultConfig returns spec.md §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		NodeCount:         28,
		LeafRange:         builder.IntRange{Min: 8, Max: 12},
		EdgeWeightRange:   builder.FloatRange{Min: 1, Max: 10},
		ContactDamage:     10,
		ContactCooldownMS: 1000,
		RunnerHP:          100,
		PursuerHP:         150,
		MinSpawnDistance:  400,
		QueueDepth:        3,
	}
}

// WithNodeCount overrides node_count.
func WithNodeCount(n int) Option { return func(cfg *Config) { cfg.NodeCount = n } }

// WithLeafRange overrides leaf_range.
func WithLeafRange(r builder.IntRange) Option { return func(cfg *Config) { cfg.LeafRange = r } }

// WithEdgeWeightRange overrides edge_weight_range.
func WithEdgeWeightRange(r builder.FloatRange) Option {
	return func(cfg *Config) { cfg.EdgeWeightRange = r }
}

// WithContactDamage overrides contact_damage.
func WithContactDamage(dmg int) Option { return func(cfg *Config) { cfg.ContactDamage = dmg } }

// WithContactCooldownMS overrides contact_cooldown_ms.
func WithContactCooldownMS(ms int64) Option {
	return func(cfg *Config) { cfg.ContactCooldownMS = ms }
}

// WithRunnerHP overrides runner_hp.
func WithRunnerHP(hp int) Option { return func(cfg *Config) { cfg.RunnerHP = hp } }

// WithPursuerHP overrides pursuer_hp.
func WithPursuerHP(hp int) Option { return func(cfg *Config) { cfg.PursuerHP = hp } }

// WithMinSpawnDistance overrides min_spawn_distance.
func WithMinSpawnDistance(d float64) Option { return func(cfg *Config) { cfg.MinSpawnDistance = d } }

// WithQueueDepth overrides queue_depth.
func WithQueueDepth(n int) Option { return func(cfg *Config) { cfg.QueueDepth = n } }

// WithCadenceMS overrides cadence_ms for a single policy, leaving every
// other policy's default (pursuer.CadenceMS) untouched.
func WithCadenceMS(p policy.Policy, ms int64) Option {
	return func(cfg *Config) {
		if cfg.CadenceOverridesMS == nil {
			cfg.CadenceOverridesMS = make(map[policy.Policy]int64)
		}
		cfg.CadenceOverridesMS[p] = ms
	}
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
