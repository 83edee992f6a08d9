package reel

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Float is a scalar animatable value.
type Float float64

// Lerp interpolates linearly toward other.
func (f Float) Lerp(other Float, t float64) Float { return f + (other-f)*Float(t) }

// Add returns f + delta.
func (f Float) Add(delta Float) Float { return f + delta }

// Sub returns the delta carrying other to f.
func (f Float) Sub(other Float) Float { return f - other }

// Identity returns zero.
func (f Float) Identity() Float { return 0 }

// Vec2 is a 2D vector animatable value.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates each component linearly toward other.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// Add returns the componentwise sum of v and delta.
func (v Vec2) Add(delta Vec2) Vec2 { return Vec2{v.X + delta.X, v.Y + delta.Y} }

// Sub returns the componentwise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 { return Vec2{v.X - other.X, v.Y - other.Y} }

// Identity returns the zero vector.
func (v Vec2) Identity() Vec2 { return Vec2{} }

// Vec3 is a 3D vector animatable value.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates each component linearly toward other.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
		Z: v.Z + (other.Z-v.Z)*t,
	}
}

// Add returns the componentwise sum of v and delta.
func (v Vec3) Add(delta Vec3) Vec3 {
	return Vec3{v.X + delta.X, v.Y + delta.Y, v.Z + delta.Z}
}

// Sub returns the componentwise difference of v and other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Identity returns the zero vector.
func (v Vec3) Identity() Vec3 { return Vec3{} }

// Quat is a rotation animatable value. Composition, not addition, is the
// group operation: Add is the Hamilton product and Identity is the unit
// quaternion. Quats fed to the engine are expected to be unit length.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion.
var QuatIdentity = Quat{0, 0, 0, 1}

// QuatRotationZ returns a rotation of rad radians about the Z axis.
func QuatRotationZ(rad float64) Quat {
	half := rad / 2
	return Quat{Z: math.Sin(half), W: math.Cos(half)}
}

// QuatAxisAngle returns a rotation of rad radians about the given axis.
// The axis need not be normalized; a zero axis yields the identity.
func QuatAxisAngle(x, y, z, rad float64) Quat {
	n := math.Sqrt(x*x + y*y + z*z)
	if n == 0 {
		return QuatIdentity
	}
	half := rad / 2
	s := math.Sin(half) / n
	return Quat{X: x * s, Y: y * s, Z: z * s, W: math.Cos(half)}
}

// Lerp interpolates toward other along the shortest path (normalized lerp).
func (q Quat) Lerp(other Quat, t float64) Quat {
	// Take the short way around.
	if q.X*other.X+q.Y*other.Y+q.Z*other.Z+q.W*other.W < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
	}
	r := Quat{
		X: q.X + (other.X-q.X)*t,
		Y: q.Y + (other.Y-q.Y)*t,
		Z: q.Z + (other.Z-q.Z)*t,
		W: q.W + (other.W-q.W)*t,
	}
	n := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z + r.W*r.W)
	if n == 0 {
		return QuatIdentity
	}
	return Quat{r.X / n, r.Y / n, r.Z / n, r.W / n}
}

// Add composes delta onto q (Hamilton product q * delta).
func (q Quat) Add(delta Quat) Quat {
	return Quat{
		X: q.W*delta.X + q.X*delta.W + q.Y*delta.Z - q.Z*delta.Y,
		Y: q.W*delta.Y - q.X*delta.Z + q.Y*delta.W + q.Z*delta.X,
		Z: q.W*delta.Z + q.X*delta.Y - q.Y*delta.X + q.Z*delta.W,
		W: q.W*delta.W - q.X*delta.X - q.Y*delta.Y - q.Z*delta.Z,
	}
}

// Sub returns the rotation carrying other to q: other.Add(q.Sub(other)) == q
// for unit quaternions.
func (q Quat) Sub(other Quat) Quat {
	inv := Quat{-other.X, -other.Y, -other.Z, other.W}
	return inv.Add(q)
}

// Identity returns the unit quaternion.
func (q Quat) Identity() Quat { return QuatIdentity }

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Lerp blends the RGB channels through go-colorful and the alpha channel
// linearly.
func (c Color) Lerp(other Color, t float64) Color {
	blended := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
	return Color{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// Add returns the componentwise sum of c and delta.
func (c Color) Add(delta Color) Color {
	return Color{c.R + delta.R, c.G + delta.G, c.B + delta.B, c.A + delta.A}
}

// Sub returns the componentwise difference of c and other.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// Identity returns the zero color.
func (c Color) Identity() Color { return Color{} }

// Volume is a decibel-valued gain. Interpolation happens in the decibel
// domain with endpoints clamped at the silence floor; combining volumes adds
// their decibel values (gain composition).
type Volume float64

// VolumeFloor is the decibel value treated as silence.
const VolumeFloor Volume = -96

// Lerp interpolates in the decibel domain. Endpoints below the silence floor
// are clamped to it first.
func (v Volume) Lerp(other Volume, t float64) Volume {
	a := v.clamped()
	b := other.clamped()
	return a + (b-a)*Volume(t)
}

// Add composes two gains by adding their decibel values.
func (v Volume) Add(delta Volume) Volume { return v + delta }

// Sub returns the gain carrying other to v.
func (v Volume) Sub(other Volume) Volume { return v - other }

// Identity returns unity gain (0 dB).
func (v Volume) Identity() Volume { return 0 }

func (v Volume) clamped() Volume {
	if v < VolumeFloor {
		return VolumeFloor
	}
	return v
}
