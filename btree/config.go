package btree

import "fmt"

const (
	// DefaultDegree is the minimum degree used when Config.Degree is left zero.
	DefaultDegree = 3
	// MinDegree is the smallest legal minimum degree.
	MinDegree = 2
	// MaxDegree bounds the minimum degree to keep node storage reasonable.
	MaxDegree = 1 << 12
	// linearScanMax is the node size up to which findKey scans linearly.
	linearScanMax = 16
)

// Config configures a B-tree index.
type Config struct {
	// Degree is the minimum degree t. Every node except the root holds between
	// t-1 and 2t-1 keys. Zero selects DefaultDegree.
	Degree int
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree must be >= %d, is %d", ErrInvalidConfig, MinDegree, cfg.Degree)
	}
	if cfg.Degree > MaxDegree {
		return fmt.Errorf("%w: degree must be <= %d, is %d", ErrInvalidConfig, MaxDegree, cfg.Degree)
	}
	return nil
}

// MaxKeys is the node capacity 2t-1 for this configuration.
func (cfg Config) MaxKeys() int {
	return 2*cfg.normalized().Degree - 1
}

// MinKeys is the lower occupancy bound t-1 for non-root nodes.
func (cfg Config) MinKeys() int {
	return cfg.normalized().Degree - 1
}
