//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gadgets

import (
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// SecureScalarVec computes this server's additive share of
// scalar*vector, where scalar and vector are themselves additively
// shared between the two servers. role is 0 for the first server
// (which sends before it receives on peer, per the role-parity rule
// every gadget's masked exchange follows) and 1 for the second.
//
// The caller must pass the ScalarVecTriple the helper generated for
// this exact call.
func SecureScalarVec(peer *p2p.Conn, role int, scalarShare int64, vectorShare ring.Vector, triple ScalarVecTriple) (ring.Vector, error) {
	maskedScalar := scalarShare + triple.X
	maskedVector := ring.Add(vectorShare, triple.Y)

	peerMaskedScalar, peerMaskedVector, err := exchangeScalarAndVector(peer, role == 0, maskedScalar, maskedVector)
	if err != nil {
		return nil, err
	}

	result := ring.Add(
		ring.Sub(
			ring.ScalarMul(ring.Add(vectorShare, peerMaskedVector), scalarShare),
			ring.ScalarMul(triple.Y, peerMaskedScalar),
		),
		triple.R,
	)

	return result, nil
}
