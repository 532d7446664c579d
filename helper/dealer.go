//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Package helper implements the trusted dealer: the third party that
// hands each compute server its half of the correlated randomness the
// gadgets consume, and never sees a share of either the user matrix or
// the item matrix (§4.2, §5).
package helper

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ShriyaGarg10/secrec/gadgets"
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// Dealer generates and streams the per-query correlated randomness
// two compute servers need to run the update protocol, in the fixed
// order both servers expect: one rotation bundle, then FeatureDim
// oblivious-lookup dot triples, then one inner-product dot triple,
// then two scalar-vector triples (§4.4 item 3).
type Dealer struct {
	Rand       io.Reader
	NumItems   int
	FeatureDim int
}

func (d *Dealer) randInt8() (int64, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.Rand, b[:]); err != nil {
		return 0, err
	}
	return int64(int8(b[0])), nil
}

func (d *Dealer) randUint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(d.Rand, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (d *Dealer) randVector(n int) (ring.Vector, error) {
	out := make(ring.Vector, n)
	for i := range out {
		v, err := d.randInt8()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// rotationMaterial draws a fresh random item index and splits the
// index and its one-hot indicator vector into a pair of shares, the
// raw material an oblivious lookup rotates into a share of the
// query's own secret index (§4.4 item 1).
func (d *Dealer) rotationMaterial() (m0, m1 gadgets.RotationMaterial, err error) {
	raw, err := d.randUint32()
	if err != nil {
		return m0, m1, err
	}
	randomIndex := int(raw % uint32(d.NumItems))

	oneHot := make(ring.Vector, d.NumItems)
	oneHot[randomIndex] = 1

	r0, err := d.randVector(d.NumItems)
	if err != nil {
		return m0, m1, err
	}
	r1 := ring.Sub(oneHot, r0)

	rotationOffsetShare, err := d.randInt8()
	if err != nil {
		return m0, m1, err
	}

	m0 = gadgets.RotationMaterial{Base: rotationOffsetShare, Vec: r0}
	m1 = gadgets.RotationMaterial{Base: int64(randomIndex) - rotationOffsetShare, Vec: r1}
	return m0, m1, nil
}

// dotTriple draws a fresh Beaver-style triple for a secure dot product
// over vectors of length n.
func (d *Dealer) dotTriple(n int) (t0, t1 gadgets.DotTriple, err error) {
	x0, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}
	y0, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}
	x1, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}
	y1, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}
	r, err := d.randInt8()
	if err != nil {
		return t0, t1, err
	}

	t0 = gadgets.DotTriple{X: x0, Y: y0, C: ring.Dot(x0, y1) + r}
	t1 = gadgets.DotTriple{X: x1, Y: y1, C: ring.Dot(x1, y0) - r}
	return t0, t1, nil
}

// scalarVecTriple draws a fresh Beaver-style triple for a secure
// scalar-vector product over vectors of length n.
func (d *Dealer) scalarVecTriple(n int) (t0, t1 gadgets.ScalarVecTriple, err error) {
	x0, err := d.randInt8()
	if err != nil {
		return t0, t1, err
	}
	x1, err := d.randInt8()
	if err != nil {
		return t0, t1, err
	}
	y0, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}
	y1, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}
	rvec, err := d.randVector(n)
	if err != nil {
		return t0, t1, err
	}

	t0 = gadgets.ScalarVecTriple{X: x0, Y: y0, R: ring.Add(ring.ScalarMul(y0, x1), rvec)}
	t1 = gadgets.ScalarVecTriple{X: x1, Y: y1, R: ring.Sub(ring.ScalarMul(y1, x0), rvec)}
	return t0, t1, nil
}

// SendQuery streams one query's worth of correlated randomness to the
// two servers over conn0 and conn1.
func (d *Dealer) SendQuery(conn0, conn1 *p2p.Conn) error {
	m0, m1, err := d.rotationMaterial()
	if err != nil {
		return fmt.Errorf("helper: rotation material: %w", err)
	}
	if err := gadgets.SendRotationMaterial(conn0, m0); err != nil {
		return err
	}
	if err := gadgets.SendRotationMaterial(conn1, m1); err != nil {
		return err
	}

	for f := 0; f < d.FeatureDim; f++ {
		t0, t1, err := d.dotTriple(d.NumItems)
		if err != nil {
			return fmt.Errorf("helper: lookup triple %d: %w", f, err)
		}
		if err := gadgets.SendDotTriple(conn0, t0); err != nil {
			return err
		}
		if err := gadgets.SendDotTriple(conn1, t1); err != nil {
			return err
		}
	}

	dt0, dt1, err := d.dotTriple(d.FeatureDim)
	if err != nil {
		return fmt.Errorf("helper: inner product triple: %w", err)
	}
	if err := gadgets.SendDotTriple(conn0, dt0); err != nil {
		return err
	}
	if err := gadgets.SendDotTriple(conn1, dt1); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		s0, s1, err := d.scalarVecTriple(d.FeatureDim)
		if err != nil {
			return fmt.Errorf("helper: scalar-vec triple %d: %w", i, err)
		}
		if err := gadgets.SendScalarVecTriple(conn0, s0); err != nil {
			return err
		}
		if err := gadgets.SendScalarVecTriple(conn1, s1); err != nil {
			return err
		}
	}

	if err := conn0.Flush(); err != nil {
		return err
	}
	return conn1.Flush()
}

// RunSession streams material for numQueries consecutive queries.
func (d *Dealer) RunSession(conn0, conn1 *p2p.Conn, numQueries int) error {
	for i := 0; i < numQueries; i++ {
		if err := d.SendQuery(conn0, conn1); err != nil {
			return fmt.Errorf("helper: query %d: %w", i, err)
		}
	}
	return nil
}
