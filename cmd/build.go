package cmd

import (
	"fmt"
	"os"

	"github.com/achilleasa/go-sbvh/sbvh"
	"github.com/urfave/cli"
)

// BuildCommand wires the sbvh builder up to a synthetic triangle
// generator, the way cmd.CompileScene wires the scene reader up to the
// teacher's own BVH builder.
var BuildCommand = cli.Command{
	Name:      "build",
	Usage:     "build an SBVH over a synthetic triangle set and print stats",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "triangles",
			Value: "grid",
			Usage: fmt.Sprintf("triangle generator to use (%v)", generatorNames()),
		},
		cli.IntFlag{
			Name:  "n",
			Value: 2,
			Usage: "max children per interior node",
		},
		cli.IntFlag{
			Name:  "leaf-threshold",
			Value: 1,
			Usage: "force a leaf once a node's reference count drops to this value",
		},
		cli.Float64Flag{
			Name:  "alpha",
			Value: 1e-5,
			Usage: "spatial split trigger threshold, relative to root half-area",
		},
		cli.IntFlag{
			Name:  "spatial-bins",
			Value: 64,
			Usage: "number of bins used by the spatial split search",
		},
	},
	Action: Build,
}

// Build runs an sbvh.Build against the requested generator and prints
// the resulting stats table plus flat node count.
func Build(ctx *cli.Context) {
	setupLogging(ctx)

	name := ctx.String("triangles")
	gen, ok := triangleGenerators[name]
	if !ok {
		logger.Error(generatorNotFoundError(name))
		os.Exit(1)
	}
	tris := gen()

	cfg := sbvh.DefaultConfig()
	cfg.N = ctx.Int("n")
	cfg.LeafThreshold = ctx.Int("leaf-threshold")
	cfg.Alpha = float32(ctx.Float64("alpha"))
	cfg.SpatialBins = ctx.Int("spatial-bins")

	if err := cfg.Validate(); err != nil {
		logger.Errorf("invalid configuration: %s", err.Error())
		os.Exit(1)
	}

	enc := newFlatEncoder()
	stats := sbvh.Build(tris, cfg, enc.nodeSink, enc.leafSink)

	fmt.Fprintf(os.Stdout, "generator: %s (%d triangles)\n", name, len(tris))
	fmt.Fprint(os.Stdout, stats.Table())
	fmt.Fprintf(os.Stdout, "flat nodes: %d, flat refs: %d\n", len(enc.nodes), len(enc.refs))
}
