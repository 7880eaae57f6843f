// api.go — BuildGraph, the single construction entrypoint.
package builder

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/waypointlab/pursuit/core"
)

var log = logrus.WithField("component", "builder")

// BuildGraph constructs a fully-wired, connected Graph per spec.md §4.2:
// jittered-ring layout, k-nearest-neighbour wiring, connectivity repair,
// then leaf-count repair. It does NOT call Graph.Freeze — the balance
// planner still needs to write heuristic and path-cost values before the
// graph becomes read-only.
//
// BuildGraph retries with a fresh derived seed up to cfg.maxSeedAttempts
// times whenever a seed fails to produce a connected graph or leaves the
// leaf count outside leaf_range. A leaf count outside leaf_range on the
// final attempt is, by default, logged and accepted rather than treated as
// failure; pass WithStrictLeafRange to make it an error instead.
func BuildGraph(opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < cfg.maxSeedAttempts; attempt++ {
		g, leafCount, err := buildOnce(cfg, attempt)
		if err != nil {
			lastErr = err
			continue
		}

		inRange := leafCount >= cfg.leafRange.Min && leafCount <= cfg.leafRange.Max
		if inRange {
			return g, nil
		}

		isLastAttempt := attempt == cfg.maxSeedAttempts-1
		if cfg.strictLeafRange {
			lastErr = ErrUnsatisfiable
			if !isLastAttempt {
				continue
			}
			return nil, lastErr
		}
		if isLastAttempt {
			log.WithFields(logrus.Fields{
				"leaf_count": leafCount,
				"leaf_min":   cfg.leafRange.Min,
				"leaf_max":   cfg.leafRange.Max,
				"seed":       cfg.seed + int64(attempt),
			}).Warn("leaf count unmet after all seed attempts; accepting nearest feasible graph")
			return g, nil
		}
		// Not the last attempt and not strict: still prefer a better seed if
		// one is available, so keep retrying.
		lastErr = ErrUnsatisfiable
	}

	if lastErr == nil {
		lastErr = ErrDisconnected
	}
	return nil, lastErr
}

// buildOnce runs the full pipeline for a single derived seed.
func buildOnce(cfg builderConfig, attempt int) (*core.Graph, int, error) {
	rng := rand.New(rand.NewSource(cfg.seed + int64(attempt)))

	g := core.NewGraph()
	if err := layout(g, cfg, rng); err != nil {
		return nil, 0, err
	}
	if err := wireKNN(g, cfg, rng); err != nil {
		return nil, 0, err
	}
	repairConnectivity(g, cfg, rng)
	if !g.Connected() {
		return nil, 0, ErrDisconnected
	}

	leafCount := repairLeafCount(g, cfg, rng)
	return g, leafCount, nil
}
