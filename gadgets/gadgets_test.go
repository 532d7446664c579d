//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gadgets

import (
	"math/rand"

	"github.com/ShriyaGarg10/secrec/ring"
)

// The helpers below mirror the trusted dealer's correlated-randomness
// generation closely enough to drive gadget tests without a real
// helper process: each returns the pair of per-server shares a
// helper would hand out for one gadget call.

func randVec(rnd *rand.Rand, n int) ring.Vector {
	out := make(ring.Vector, n)
	for i := range out {
		out[i] = int64(int8(rnd.Intn(256) - 128))
	}
	return out
}

func genDotTriples(rnd *rand.Rand, n int) (DotTriple, DotTriple) {
	x0 := randVec(rnd, n)
	y0 := randVec(rnd, n)
	x1 := randVec(rnd, n)
	y1 := randVec(rnd, n)
	r := int64(int8(rnd.Intn(256) - 128))

	c0 := ring.Dot(x0, y1) + r
	c1 := ring.Dot(x1, y0) - r

	return DotTriple{X: x0, Y: y0, C: c0}, DotTriple{X: x1, Y: y1, C: c1}
}

func genScalarVecTriples(rnd *rand.Rand, n int) (ScalarVecTriple, ScalarVecTriple) {
	x0 := int64(int8(rnd.Intn(256) - 128))
	x1 := int64(int8(rnd.Intn(256) - 128))
	y0 := randVec(rnd, n)
	y1 := randVec(rnd, n)
	rvec := randVec(rnd, n)

	r0 := ring.Add(ring.ScalarMul(y0, x1), rvec)
	r1 := ring.Sub(ring.ScalarMul(y1, x0), rvec)

	return ScalarVecTriple{X: x0, Y: y0, R: r0}, ScalarVecTriple{X: x1, Y: y1, R: r1}
}

func genRotationMaterial(rnd *rand.Rand, numItems int, randomIndex int) (RotationMaterial, RotationMaterial) {
	oneHot := make(ring.Vector, numItems)
	oneHot[randomIndex] = 1

	r0 := randVec(rnd, numItems)
	r1 := ring.Sub(oneHot, r0)

	rotationOffsetShare := int64(int32(rnd.Intn(256) - 128))

	m0 := RotationMaterial{Base: rotationOffsetShare, Vec: r0}
	m1 := RotationMaterial{Base: int64(randomIndex) - rotationOffsetShare, Vec: r1}
	return m0, m1
}

// splitVector returns two random additive shares of v.
func splitVector(rnd *rand.Rand, v ring.Vector) (ring.Vector, ring.Vector) {
	share0 := randVec(rnd, len(v))
	share1 := ring.Sub(v, share0)
	return share0, share1
}

// splitScalar returns two random additive shares of x.
func splitScalar(rnd *rand.Rand, x int64) (int64, int64) {
	s0 := int64(int8(rnd.Intn(256) - 128))
	return s0, x - s0
}
