package cursorfx

import "math"

// Transforms compose as translate + uniform scale:
//
//	world(child) = world(parent).Position + world(parent).Scale * child.Position
//	scale(child) = scale(parent) * child.Scale
//
// Rotation is not modeled; picking only needs positions and extents.

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	return n.Parent.WorldPosition().Add(n.Position.Scale(n.Parent.WorldScale()))
}

// WorldScale returns the accumulated uniform scale.
func (n *Node) WorldScale() float64 {
	s := 1.0
	for p := n; p != nil; p = p.Parent {
		s *= p.Scale
	}
	return s
}

// LocalToWorld converts a point from this node's local space to world space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return n.WorldPosition().Add(p.Scale(n.WorldScale()))
}

// WorldToLocal converts a world point to this node's local space.
// A zero world scale maps every point to the origin.
func (n *Node) WorldToLocal(p Vec3) Vec3 {
	s := n.WorldScale()
	if s == 0 {
		return Vec3{}
	}
	return p.Sub(n.WorldPosition()).Scale(1 / s)
}

// worldRayToLocal maps r into local space. The direction is unchanged, so a
// local ray parameter multiplied by the world scale is the world parameter.
func (n *Node) worldRayToLocal(r Ray) Ray {
	return Ray{Origin: n.WorldToLocal(r.Origin), Direction: r.Direction}
}

// --- Built-in HitShape types ---

// HitSphere is a spherical hit area in local coordinates.
type HitSphere struct {
	Center Vec3
	Radius float64
}

// IntersectRay reports where r first touches the sphere. A ray starting inside
// the sphere hits at t = 0.
func (s HitSphere) IntersectRay(r Ray) (float64, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, false
	}
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / a
	if t < 0 {
		return 0, false
	}
	return t, true
}

// HitBox is an axis-aligned box hit area in local coordinates.
type HitBox struct {
	Min, Max Vec3
}

// IntersectRay uses the slab test. A ray starting inside the box hits at t = 0.
func (b HitBox) IntersectRay(r Ray) (float64, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	o := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
