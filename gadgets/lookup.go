//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gadgets

import (
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// ObliviousLookup retrieves this server's share of the feature-dim
// row of itemMatrix at the secret index reconstructed from itemShare
// (this party's share) and the peer's share, revealing neither the
// index nor the row to either server.
//
// material is the rotation triple the helper generated for this
// query, one random index share and the matching one-hot share.
// dotTriples must hold exactly itemMatrix.Cols() entries, one per
// feature column, each a DotTriple generated for a vector of length
// itemMatrix.Rows().
func ObliviousLookup(peer *p2p.Conn, role int, itemShare int64, itemMatrix ring.Matrix, material RotationMaterial, dotTriples []DotTriple) (ring.Vector, error) {
	numItems := itemMatrix.Rows()
	featureDim := itemMatrix.Cols()

	rotationOffset := itemShare - material.Base
	peerRotationOffset, err := ExchangeInt64(peer, role == 0, rotationOffset)
	if err != nil {
		return nil, err
	}

	combinedOffset := rotationOffset + peerRotationOffset
	totalRotation := wrapRotation(combinedOffset, numItems)

	selector := rightRotate(material.Vec, totalRotation)

	profile := make(ring.Vector, featureDim)
	for f := 0; f < featureDim; f++ {
		column := itemMatrix.Column(f)
		v, err := SecureDot(peer, role, column, selector, dotTriples[f])
		if err != nil {
			return nil, err
		}
		profile[f] = v
	}
	return profile, nil
}

// wrapRotation reduces a signed combined offset into [0, numItems).
func wrapRotation(combinedOffset int64, numItems int) int {
	n := int64(numItems)
	r := combinedOffset % n
	if r < 0 {
		r += n
	}
	return int(r)
}

// rightRotate returns a copy of vec with every element moved forward
// shift positions, wrapping around: out[(i+shift)%n] = vec[i]. Used to
// turn the helper's one-hot share at a random index into a one-hot
// share at the query's secret index.
func rightRotate(vec ring.Vector, shift int) ring.Vector {
	n := len(vec)
	out := make(ring.Vector, n)
	shift = ((shift % n) + n) % n
	for i, v := range vec {
		out[(i+shift)%n] = v
	}
	return out
}
