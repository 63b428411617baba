package glyph3d

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps32 = 1e-5

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name   string
		got    Vec3
		expect Vec3
	}{
		{"Add", a.Add(b), V3(5, -3, 9)},
		{"Sub", a.Sub(b), V3(-3, 7, -3)},
		{"Scale", a.Scale(2), V3(2, 4, 6)},
		{"Neg", a.Neg(), V3(-1, -2, -3)},
		{"Cross", V3(1, 0, 0).Cross(V3(0, 1, 0)), V3(0, 0, 1)},
		{"Lerp mid", a.Lerp(b, 0.5), V3(2.5, -1.5, 4.5)},
		{"Lerp start", a.Lerp(b, 0), a},
		{"Lerp end", a.Lerp(b, 1), b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, eps32) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec3_Length(t *testing.T) {
	v := V3(2, 3, 6)
	if got := v.Length(); math32.Abs(got-7) > eps32 {
		t.Errorf("Length() = %v, want 7", got)
	}
	if got := v.LengthSq(); got != 49 {
		t.Errorf("LengthSq() = %v, want 49", got)
	}
	if got := v.Normalize().Length(); math32.Abs(got-1) > eps32 {
		t.Errorf("Normalize().Length() = %v, want 1", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}

func TestVec3_RotateByAxisAngle(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		axis   Vec3
		angle  float32
		expect Vec3
	}{
		{"quarter turn around Y", V3(1, 0, 0), V3(0, 1, 0), math32.Pi / 2, V3(0, 0, -1)},
		{"half turn around Z", V3(1, 0, 0), V3(0, 0, 2), math32.Pi, V3(-1, 0, 0)},
		{"parallel to axis", V3(0, 5, 0), V3(0, 1, 0), 1.3, V3(0, 5, 0)},
		{"zero axis", V3(1, 2, 3), Vec3{}, 1, V3(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.RotateByAxisAngle(tt.axis, tt.angle)
			if !got.Approx(tt.expect, eps32) {
				t.Errorf("RotateByAxisAngle = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestVec3_RotatePreservesLength(t *testing.T) {
	v := V3(0, 20, 60)
	up := V3(0, 1, 0)
	for i := 0; i < 100; i++ {
		v = v.RotateByAxisAngle(up, 0.01)
	}
	if got, want := v.Length(), V3(0, 20, 60).Length(); math32.Abs(got-want) > 1e-3 {
		t.Errorf("length drifted: %v, want %v", got, want)
	}
}
