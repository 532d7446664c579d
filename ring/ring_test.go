//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package ring

import "testing"

func TestDot(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	got := Dot(a, b)
	want := int64(1*4 + 2*5 + 3*6)
	if got != want {
		t.Errorf("Dot(%v, %v) = %d, want %d", a, b, got, want)
	}
}

func TestAddSub(t *testing.T) {
	a := Vector{1, -2, 3}
	b := Vector{4, 5, -6}
	sum := Add(a, b)
	for i := range sum {
		if sum[i] != a[i]+b[i] {
			t.Fatalf("Add mismatch at %d: got %d", i, sum[i])
		}
	}
	diff := Sub(sum, b)
	for i := range diff {
		if diff[i] != a[i] {
			t.Fatalf("Sub mismatch at %d: got %d, want %d", i, diff[i], a[i])
		}
	}
}

func TestScalarMul(t *testing.T) {
	v := Vector{2, -3, 5}
	got := ScalarMul(v, -7)
	want := Vector{-14, 21, -35}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ScalarMul[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestU32RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 1 << 20, -(1 << 20), -11, -19}
	for _, c := range cases {
		got := FromU32(ToU32(c))
		if got != c {
			t.Errorf("round trip of %d: got %d", c, got)
		}
	}
}

func TestDotAdditivity(t *testing.T) {
	// <u0+u1, v> == <u0,v> + <u1,v>, the algebraic fact secure-dot
	// correctness rests on.
	u0 := Vector{3, -1}
	u1 := Vector{-7, 4}
	v := Vector{2, 5}
	lhs := Dot(Add(u0, u1), v)
	rhs := Dot(u0, v) + Dot(u1, v)
	if lhs != rhs {
		t.Errorf("additivity broke: %d != %d", lhs, rhs)
	}
}
