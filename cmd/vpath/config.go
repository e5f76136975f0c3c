package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/vpath"
)

// Config describes the filter pipeline.
type Config struct {
	// Transform holds the coefficients of an affine transform, in the order
	// of vpath.Affine, or the row-major coefficients of a projective one.
	Transform []float64 `toml:"transform"`
	// Close is one of "none", "closed" and "all".
	Close string `toml:"close"`
	// Conics is one of "keep", "arcs" and "cubics".
	Conics string `toml:"conics"`
	// Downgrade is the tolerance of the downgrade filter. 0 disables it.
	Downgrade float64             `toml:"downgrade"`
	Validate  bool                `toml:"validate"`
	Approx    vpath.ApproxOptions `toml:"approx"`
	SVG       vpath.SVGOptions    `toml:"svg"`
}

func defaultConfig() Config {
	return Config{Close: "none", Conics: "keep"}
}

// loadConfig reads a TOML configuration on top of the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) transform() (vpath.Transform, error) {
	t := cfg.Transform
	switch len(t) {
	case 0:
		return nil, nil
	case 6:
		return vpath.Affine{N0: t[0], N1: t[1], N2: t[2], N3: t[3], N4: t[4], N5: t[5]}, nil
	case 9:
		return vpath.Projective{
			N0: t[0], N1: t[1], N2: t[2],
			N3: t[3], N4: t[4], N5: t[5],
			N6: t[6], N7: t[7], N8: t[8],
		}, nil
	default:
		return nil, fmt.Errorf("transform needs 6 or 9 coefficients, got %d", len(t))
	}
}
