package inventory

import (
	"context"
	"fmt"
	"math/rand"
)

// Source kinds selectable from configuration.
const (
	KindDemo  = "demo"
	KindCSV   = "csv"
	KindMySQL = "mysql"
)

// Config selects and parameterizes an inventory source.
type Config struct {
	Kind string `json:"kind,omitempty"` // demo (default), csv, or mysql.
	Path string `json:"path,omitempty"` // CSV file path for kind=csv.
	DSN  string `json:"dsn,omitempty"`  // MySQL DSN for kind=mysql.
	Seed int64  `json:"seed,omitempty"` // Demo generator seed; 0 picks an arbitrary inventory.
}

// DefaultConfig returns the default inventory configuration (demo generator).
func DefaultConfig() Config {
	return Config{Kind: KindDemo}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Kind != "" {
		c.Kind = source.Kind
	}
	if source.Path != "" {
		c.Path = source.Path
	}
	if source.DSN != "" {
		c.DSN = source.DSN
	}
	if source.Seed != 0 {
		c.Seed = source.Seed
	}
}

// NewSource creates a Source from configuration.
func NewSource(ctx context.Context, cfg *Config) (Source, error) {
	switch cfg.Kind {
	case "", KindDemo:
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Int63()
		}
		return NewGenerator(rand.New(rand.NewSource(seed))), nil
	case KindCSV:
		if cfg.Path == "" {
			return nil, fmt.Errorf("csv inventory requires a path")
		}
		return NewCSVSource(cfg.Path)
	case KindMySQL:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("mysql inventory requires a dsn")
		}
		return OpenSQLRepository(ctx, cfg.DSN)
	}
	return nil, fmt.Errorf("unknown inventory kind: %q", cfg.Kind)
}
