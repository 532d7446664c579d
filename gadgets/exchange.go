//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gadgets

import (
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// ExchangeInt64 trades val with the peer over conn. sendFirst governs
// which side of the blocking link writes before it reads; the two
// parties on a link must pass opposite values for a call to
// terminate. It is exported for the per-feature FCW-repair exchange,
// which is not itself a Beaver-style gadget but follows the same
// one-round masked-exchange shape.
func ExchangeInt64(conn *p2p.Conn, sendFirst bool, val int64) (int64, error) {
	if sendFirst {
		if err := conn.SendInt64(val); err != nil {
			return 0, err
		}
		if err := conn.Flush(); err != nil {
			return 0, err
		}
		return conn.ReceiveInt64()
	}
	peerVal, err := conn.ReceiveInt64()
	if err != nil {
		return 0, err
	}
	if err := conn.SendInt64(val); err != nil {
		return 0, err
	}
	if err := conn.Flush(); err != nil {
		return 0, err
	}
	return peerVal, nil
}

// exchangeInt64Vectors trades two vectors in one round, matching the
// (masked_x, masked_y) and (masked_scalar, masked_vector) pairs the
// dot and scalar-vector gadgets send together.
func exchangeInt64Vectors(conn *p2p.Conn, sendFirst bool, a, b ring.Vector) (ring.Vector, ring.Vector, error) {
	if sendFirst {
		if err := conn.SendInt64Vector(a); err != nil {
			return nil, nil, err
		}
		if err := conn.SendInt64Vector(b); err != nil {
			return nil, nil, err
		}
		if err := conn.Flush(); err != nil {
			return nil, nil, err
		}
		pa, err := conn.ReceiveInt64Vector()
		if err != nil {
			return nil, nil, err
		}
		pb, err := conn.ReceiveInt64Vector()
		if err != nil {
			return nil, nil, err
		}
		return ring.Vector(pa), ring.Vector(pb), nil
	}
	pa, err := conn.ReceiveInt64Vector()
	if err != nil {
		return nil, nil, err
	}
	pb, err := conn.ReceiveInt64Vector()
	if err != nil {
		return nil, nil, err
	}
	if err := conn.SendInt64Vector(a); err != nil {
		return nil, nil, err
	}
	if err := conn.SendInt64Vector(b); err != nil {
		return nil, nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, nil, err
	}
	return ring.Vector(pa), ring.Vector(pb), nil
}

// exchangeScalarAndVector trades a scalar and a vector in one round,
// matching the (masked_scalar, masked_vector) pair the scalar-vector
// gadget sends together.
func exchangeScalarAndVector(conn *p2p.Conn, sendFirst bool, scalar int64, vec ring.Vector) (int64, ring.Vector, error) {
	if sendFirst {
		if err := conn.SendInt64(scalar); err != nil {
			return 0, nil, err
		}
		if err := conn.SendInt64Vector(vec); err != nil {
			return 0, nil, err
		}
		if err := conn.Flush(); err != nil {
			return 0, nil, err
		}
		ps, err := conn.ReceiveInt64()
		if err != nil {
			return 0, nil, err
		}
		pv, err := conn.ReceiveInt64Vector()
		if err != nil {
			return 0, nil, err
		}
		return ps, ring.Vector(pv), nil
	}
	ps, err := conn.ReceiveInt64()
	if err != nil {
		return 0, nil, err
	}
	pv, err := conn.ReceiveInt64Vector()
	if err != nil {
		return 0, nil, err
	}
	if err := conn.SendInt64(scalar); err != nil {
		return 0, nil, err
	}
	if err := conn.SendInt64Vector(vec); err != nil {
		return 0, nil, err
	}
	if err := conn.Flush(); err != nil {
		return 0, nil, err
	}
	return ps, ring.Vector(pv), nil
}
