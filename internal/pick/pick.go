package pick

import (
	"github.com/chewxy/math32"

	"mol-viewer/internal/rep"
)

// fallbackDistance is how far along the ray the context menu spawns when the
// ray misses the molecule entirely (1 m in scene units).
const fallbackDistance float32 = 1.0

// RaySphere returns the smallest positive distance t at which the ray
// (origin, dir) hits the sphere, if any. dir must be normalized.
func RaySphere(origin, dir, center [3]float32, radius float32) (float32, bool) {
	oc := [3]float32{origin[0] - center[0], origin[1] - center[1], origin[2] - center[2]}
	b := 2 * (oc[0]*dir[0] + oc[1]*dir[1] + oc[2]*dir[2])
	c := oc[0]*oc[0] + oc[1]*oc[1] + oc[2]*oc[2] - radius*radius
	disc := b*b - 4*c
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := math32.Sqrt(disc)
	const epsilon = 1e-4
	if t := (-b - sqrtDisc) / 2; t > epsilon {
		return t, true
	}
	if t := (-b + sqrtDisc) / 2; t > epsilon {
		return t, true
	}
	return 0, false
}

// Nearest returns the closest hit of the ray against the group's sphere
// instances, scaled by unitScale (the molecule's Å-to-scene factor).
func Nearest(origin, dir [3]float32, g *rep.Group, unitScale float32) ([3]float32, bool) {
	if g == nil {
		return [3]float32{}, false
	}
	best := math32.Inf(1)
	found := false
	for _, s := range g.Spheres {
		center := [3]float32{s.Center[0] * unitScale, s.Center[1] * unitScale, s.Center[2] * unitScale}
		if t, ok := RaySphere(origin, dir, center, s.Radius*unitScale); ok && t < best {
			best = t
			found = true
		}
	}
	if !found {
		return [3]float32{}, false
	}
	return pointAt(origin, dir, best), true
}

// SpawnPoint picks where the context menu opens: the nearest ray hit on the
// molecule, or a point a fixed distance ahead when nothing is hit.
func SpawnPoint(origin, dir [3]float32, g *rep.Group, unitScale float32) [3]float32 {
	if hit, ok := Nearest(origin, dir, g, unitScale); ok {
		return hit
	}
	return pointAt(origin, dir, fallbackDistance)
}

func pointAt(origin, dir [3]float32, t float32) [3]float32 {
	return [3]float32{origin[0] + dir[0]*t, origin[1] + dir[1]*t, origin[2] + dir[2]*t}
}
