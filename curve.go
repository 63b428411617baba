package glyph3d

import "iter"

// Curve types for 3D wire and path rendering.
// Samplers return lazy sequences so callers can stream points straight
// into vertex buffers without intermediate slices.

// -------------------------------------------------------------------
// CubicBez3 - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez3 represents a cubic Bezier curve in 3D.
// P0 and P3 are the anchors, P1 and P2 the control points.
type CubicBez3 struct {
	P0, P1, P2, P3 Vec3
}

// NewCubicBez3 creates a new cubic Bezier curve.
func NewCubicBez3(p0, p1, p2, p3 Vec3) CubicBez3 {
	return CubicBez3{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1) with the Bernstein basis
// (1-t)³, 3(1-t)²t, 3(1-t)t², t³ in single precision.
func (c CubicBez3) Eval(t float32) Vec3 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	cc := 3 * mt * t * t
	d := t * t * t
	return Vec3{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
		Z: a*c.P0.Z + b*c.P1.Z + cc*c.P2.Z + d*c.P3.Z,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez3) Start() Vec3 {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez3) End() Vec3 {
	return c.P3
}

// Samples returns segments points at t = i/segments for i = 1..segments.
// The start point is not emitted: it is the implicit first anchor of the
// line strip. A segments value below 1 yields nothing.
func (c CubicBez3) Samples(segments int) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if segments < 1 {
			return
		}
		n := float32(segments)
		for i := 1; i <= segments; i++ {
			if !yield(c.Eval(float32(i) / n)) {
				return
			}
		}
	}
}

// SampleBezierCubic samples the cubic Bezier p1, c2, c3, p4 at
// t = 1/segments, 2/segments, ..., 1. Exactly segments points are
// produced, in increasing t; the last one equals p4.
//
// segments must be at least 1. Smaller values are a caller error and
// produce an empty sequence.
func SampleBezierCubic(p1, c2, c3, p4 Vec3, segments int) iter.Seq[Vec3] {
	return NewCubicBez3(p1, c2, c3, p4).Samples(segments)
}

// -------------------------------------------------------------------
// BSplineSegment - Uniform Cubic B-spline
// -------------------------------------------------------------------

// BSplineSegment is one window of a uniform cubic B-spline in power
// form: Eval(t) = ((A·t + B)·t + C)·t + D, per axis.
type BSplineSegment struct {
	A, B, C, D Vec3
}

// NewBSplineSegment computes the uniform cubic B-spline coefficients
// for four consecutive control points.
func NewBSplineSegment(p1, p2, p3, p4 Vec3) BSplineSegment {
	return BSplineSegment{
		A: Vec3{
			X: (-p1.X + 3*p2.X - 3*p3.X + p4.X) / 6,
			Y: (-p1.Y + 3*p2.Y - 3*p3.Y + p4.Y) / 6,
			Z: (-p1.Z + 3*p2.Z - 3*p3.Z + p4.Z) / 6,
		},
		B: Vec3{
			X: (3*p1.X - 6*p2.X + 3*p3.X) / 6,
			Y: (3*p1.Y - 6*p2.Y + 3*p3.Y) / 6,
			Z: (3*p1.Z - 6*p2.Z + 3*p3.Z) / 6,
		},
		C: Vec3{
			X: (-3*p1.X + 3*p3.X) / 6,
			Y: (-3*p1.Y + 3*p3.Y) / 6,
			Z: (-3*p1.Z + 3*p3.Z) / 6,
		},
		D: Vec3{
			X: (p1.X + 4*p2.X + p3.X) / 6,
			Y: (p1.Y + 4*p2.Y + p3.Y) / 6,
			Z: (p1.Z + 4*p2.Z + p3.Z) / 6,
		},
	}
}

// Eval evaluates the segment at t in [0, 1].
func (s BSplineSegment) Eval(t float32) Vec3 {
	return Vec3{
		X: ((s.A.X*t+s.B.X)*t+s.C.X)*t + s.D.X,
		Y: ((s.A.Y*t+s.B.Y)*t+s.C.Y)*t + s.D.Y,
		Z: ((s.A.Z*t+s.B.Z)*t+s.C.Z)*t + s.D.Z,
	}
}

// Knot returns the segment's starting blended point, (p1 + 4·p2 + p3)/6.
func (s BSplineSegment) Knot() Vec3 {
	return s.D
}

// SampleBSplineChain evaluates the knot of every window of four
// consecutive control points, points[i:i+4] for i = 0..len(points)-4.
// It yields len(points)-3 points; consecutive pairs form the
// len(points)-4 connected line segments of the chain. Fewer than four
// control points yield nothing.
//
// density is reserved: each window currently contributes its starting
// knot only, whatever the density.
func SampleBSplineChain(points []Vec3, density int) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		for i := 0; i+3 < len(points); i++ {
			seg := NewBSplineSegment(points[i], points[i+1], points[i+2], points[i+3])
			if !yield(seg.Knot()) {
				return
			}
		}
	}
}

// -------------------------------------------------------------------
// Sequence helpers
// -------------------------------------------------------------------

// Prepend yields p followed by every point of seq.
// Use it to restore the implicit start anchor of a Bezier sample run.
func Prepend(p Vec3, seq iter.Seq[Vec3]) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if !yield(p) {
			return
		}
		for q := range seq {
			if !yield(q) {
				return
			}
		}
	}
}

// Segments yields each pair of consecutive points of seq as (from, to).
// A sequence of n points yields n-1 segments.
func Segments(seq iter.Seq[Vec3]) iter.Seq2[Vec3, Vec3] {
	return func(yield func(Vec3, Vec3) bool) {
		var prev Vec3
		first := true
		for p := range seq {
			if first {
				prev, first = p, false
				continue
			}
			if !yield(prev, p) {
				return
			}
			prev = p
		}
	}
}
