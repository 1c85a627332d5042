package cursorfx

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec3 is a plain 3D vector used for positions, offsets and directions.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Ray is a half-line with an origin and a direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// HostRay is the ray format reported by the host platform.
type HostRay struct {
	Origin    f64.Vec3
	Direction f64.Vec3
}

// ray copies the host vectors into plain triples.
func (h HostRay) ray() Ray {
	return Ray{
		Origin:    Vec3{h.Origin[0], h.Origin[1], h.Origin[2]},
		Direction: Vec3{h.Direction[0], h.Direction[1], h.Direction[2]},
	}
}

// HostRayOf converts a Ray into the host's vector format.
func HostRayOf(r Ray) HostRay {
	return HostRay{
		Origin:    f64.Vec3{r.Origin.X, r.Origin.Y, r.Origin.Z},
		Direction: f64.Vec3{r.Direction.X, r.Direction.Y, r.Direction.Z},
	}
}

// Rect is an axis-aligned screen rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes group nodes from renderable geometry.
type NodeType uint8

const (
	NodeTypeGroup NodeType = iota // container with no geometry of its own
	NodeTypeMesh                  // renderable geometry; the host reports events against these
)
