//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Package gadgets implements the secure dot product, secure
// scalar-vector product, and oblivious indexed lookup building blocks
// the query processor composes into the update rule. Every gadget has
// an offline half, a tuple of correlated randomness the helper hands
// out once per call, and an online half, one masked exchange per
// server over the peer link (§4.2).
package gadgets

import (
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// DotTriple is one server's half of the correlated randomness for a
// single secure dot product call. The helper hands out one DotTriple
// to each server per call; the two X shares and the two Y shares are
// independent random vectors, and the two C shares satisfy
// C0 + C1 = dot(X0, Y1) + dot(X1, Y0).
type DotTriple struct {
	X ring.Vector
	Y ring.Vector
	C int64
}

// ScalarVecTriple is one server's half of the correlated randomness
// for a single secure scalar-vector product call. X is this party's
// share of a random scalar, Y of a random vector the same length as
// the gadget's vector operand, and R this party's share of a masking
// vector used to hide the cross terms of the Beaver-style
// multiplication.
type ScalarVecTriple struct {
	X int64
	Y ring.Vector
	R ring.Vector
}

// RotationMaterial is one server's half of the correlated randomness
// for one oblivious indexed lookup: Base is this party's share of a
// helper-chosen random index, and Vec this party's share of the
// one-hot vector at that index.
type RotationMaterial struct {
	Base int64
	Vec  ring.Vector
}

// SendDotTriple writes t to conn in the fixed wire order (X, Y, C)
// the helper and the servers agree on.
func SendDotTriple(conn *p2p.Conn, t DotTriple) error {
	if err := conn.SendInt64Vector(t.X); err != nil {
		return err
	}
	if err := conn.SendInt64Vector(t.Y); err != nil {
		return err
	}
	return conn.SendInt64(t.C)
}

// ReceiveDotTriple reads a DotTriple in the order SendDotTriple wrote it.
func ReceiveDotTriple(conn *p2p.Conn) (DotTriple, error) {
	x, err := conn.ReceiveInt64Vector()
	if err != nil {
		return DotTriple{}, err
	}
	y, err := conn.ReceiveInt64Vector()
	if err != nil {
		return DotTriple{}, err
	}
	c, err := conn.ReceiveInt64()
	if err != nil {
		return DotTriple{}, err
	}
	return DotTriple{X: ring.Vector(x), Y: ring.Vector(y), C: c}, nil
}

// SendScalarVecTriple writes t to conn in the fixed wire order
// (X, Y, R).
func SendScalarVecTriple(conn *p2p.Conn, t ScalarVecTriple) error {
	if err := conn.SendInt64(t.X); err != nil {
		return err
	}
	if err := conn.SendInt64Vector(t.Y); err != nil {
		return err
	}
	return conn.SendInt64Vector(t.R)
}

// ReceiveScalarVecTriple reads a ScalarVecTriple in the order
// SendScalarVecTriple wrote it.
func ReceiveScalarVecTriple(conn *p2p.Conn) (ScalarVecTriple, error) {
	x, err := conn.ReceiveInt64()
	if err != nil {
		return ScalarVecTriple{}, err
	}
	y, err := conn.ReceiveInt64Vector()
	if err != nil {
		return ScalarVecTriple{}, err
	}
	r, err := conn.ReceiveInt64Vector()
	if err != nil {
		return ScalarVecTriple{}, err
	}
	return ScalarVecTriple{X: x, Y: ring.Vector(y), R: ring.Vector(r)}, nil
}

// SendRotationMaterial writes m to conn in the fixed wire order
// (Base, Vec).
func SendRotationMaterial(conn *p2p.Conn, m RotationMaterial) error {
	if err := conn.SendInt64(m.Base); err != nil {
		return err
	}
	return conn.SendInt64Vector(m.Vec)
}

// ReceiveRotationMaterial reads a RotationMaterial in the order
// SendRotationMaterial wrote it.
func ReceiveRotationMaterial(conn *p2p.Conn) (RotationMaterial, error) {
	base, err := conn.ReceiveInt64()
	if err != nil {
		return RotationMaterial{}, err
	}
	vec, err := conn.ReceiveInt64Vector()
	if err != nil {
		return RotationMaterial{}, err
	}
	return RotationMaterial{Base: base, Vec: ring.Vector(vec)}, nil
}
