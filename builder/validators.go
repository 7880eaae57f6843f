// validators.go — config validation, mirroring lvlath's validators.go: fail
// fast with sentinel errors, never panic.
package builder

import (
	"fmt"

	"github.com/waypointlab/pursuit/core"
)

func (cfg builderConfig) validate() error {
	if cfg.nodeCount < 4 {
		return fmt.Errorf("%w: node_count=%d", ErrTooFewVertices, cfg.nodeCount)
	}
	if cfg.leafRange.Min < 0 || cfg.leafRange.Max < cfg.leafRange.Min || cfg.leafRange.Max > cfg.nodeCount {
		return fmt.Errorf("%w: %+v", ErrInvalidLeafRange, cfg.leafRange)
	}
	if cfg.edgeWeightRange.Min < core.MinEdgeWeight || cfg.edgeWeightRange.Max > core.MaxEdgeWeight ||
		cfg.edgeWeightRange.Max < cfg.edgeWeightRange.Min {
		return fmt.Errorf("%w: %+v", ErrInvalidWeightRange, cfg.edgeWeightRange)
	}
	if cfg.kRange.Min < 1 || cfg.kRange.Max < cfg.kRange.Min {
		return fmt.Errorf("%w: k range %+v", ErrInvalidLeafRange, cfg.kRange)
	}
	return nil
}
