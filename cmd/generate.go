package cmd

import (
	"fmt"
	"math"

	"github.com/achilleasa/go-sbvh/sbvh"
	"github.com/achilleasa/go-sbvh/types"
)

// triangleGenerators produces the synthetic triangle sets accepted by the
// --triangles flag. Loading a real mesh is out of scope; these stand in
// for reading a mesh from disk.
var triangleGenerators = map[string]func() []sbvh.Tri{
	"grid":              generateGrid,
	"teapot-in-stadium": generateTeapotInStadium,
	"coplanar":          generateCoplanar,
}

func generatorNames() []string {
	names := make([]string, 0, len(triangleGenerators))
	for name := range triangleGenerators {
		names = append(names, name)
	}
	return names
}

// tri returns a small right triangle with its right angle at corner,
// extending size along each of the two axes that are not the given
// out-of-plane axis.
func tri(corner types.Vec3, size float32, plane sbvh.Axis) sbvh.Tri {
	v1, v2 := corner, corner
	switch plane {
	case sbvh.AxisZ:
		v1[0] += size
		v2[1] += size
	case sbvh.AxisY:
		v1[0] += size
		v2[2] += size
	default:
		v1[1] += size
		v2[2] += size
	}
	return sbvh.Tri{V0: corner, V1: v1, V2: v2}
}

// generateGrid lays out a 5x5x5 grid of well-separated small right
// triangles (legs of length 0.5),
// exercising object splits along all three axes.
func generateGrid() []sbvh.Tri {
	const cells = 5
	const pitch = 2.0
	const size = 0.5

	tris := make([]sbvh.Tri, 0, cells*cells*cells)
	for x := 0; x < cells; x++ {
		for y := 0; y < cells; y++ {
			for z := 0; z < cells; z++ {
				corner := types.XYZ(float32(x)*pitch, float32(y)*pitch, float32(z)*pitch)
				tris = append(tris, tri(corner, size, sbvh.AxisZ))
			}
		}
	}
	return tris
}

// generateTeapotInStadium builds a dense cluster of small triangles
// packed into [0,1]^3 alongside one triangle stretching across
// [-100,100] on x. The wide triangle's
// bounding box dominates any object split's overlap, which is exactly
// what should trigger a spatial split once alpha is small enough.
func generateTeapotInStadium() []sbvh.Tri {
	const clusterSize = 100
	tris := make([]sbvh.Tri, 0, clusterSize+1)

	for i := 0; i < clusterSize; i++ {
		u := float32(math.Mod(float64(i)*0.61803398875, 1))
		v := float32(math.Mod(float64(i)*0.41421356237, 1))
		w := float32(math.Mod(float64(i)*0.73205080757, 1))
		corner := types.XYZ(u*0.9, v*0.9, w*0.9)
		tris = append(tris, tri(corner, 0.05, sbvh.AxisZ))
	}

	tris = append(tris, sbvh.Tri{
		V0: types.XYZ(-100, 0, 0),
		V1: types.XYZ(100, 0, 0),
		V2: types.XYZ(0, 0.01, 0),
	})
	return tris
}

// generateCoplanar produces a flat mesh: every vertex has z == 0, so the
// z extent of every bounding box (including the root) is zero and no
// split may ever choose that axis.
func generateCoplanar() []sbvh.Tri {
	const cells = 8
	const pitch = 1.5
	const size = 0.4

	tris := make([]sbvh.Tri, 0, cells*cells)
	for x := 0; x < cells; x++ {
		for y := 0; y < cells; y++ {
			corner := types.XYZ(float32(x)*pitch, float32(y)*pitch, 0)
			tris = append(tris, tri(corner, size, sbvh.AxisZ))
		}
	}
	return tris
}

func generatorNotFoundError(name string) error {
	return fmt.Errorf("unknown triangle generator %q; available: %v", name, generatorNames())
}
