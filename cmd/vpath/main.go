// Command vpath reads SVG path data, runs it through a pipeline of path
// filters and writes the result as SVG path data.
//
// Usage:
//
//	vpath [flags] [file]
//
// Without a file, the path data is read from standard input. The pipeline is
// configured by a TOML file (--config) and by flags, which take precedence:
//
//	transform = [1, 0, 0, -1, 0, 100] # 6 affine or 9 projective coefficients
//	close = "all"                     # "none", "closed" or "all"
//	conics = "cubics"                 # "keep", "arcs" or "cubics"
//	downgrade = 0.01                  # tolerance, 0 disables
//	validate = true
//
//	[approx]
//	tolerance = 0.001
//	max_depth = 8
//
//	[svg]
//	max_precision = 4
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
