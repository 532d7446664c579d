//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package gadgets

import (
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// SecureDot computes this server's additive share of dot(x, y), where
// x and y are themselves additively shared between the two servers
// and never appear in plaintext on the wire. role is 0 for the first
// server (which sends before it receives on peer) and 1 for the
// second.
//
// The caller must first receive a DotTriple generated by the helper
// for this exact call and pass it in; the two servers' triples must
// come from the same helper-side call so that the cross terms cancel.
func SecureDot(peer *p2p.Conn, role int, xShare, yShare ring.Vector, triple DotTriple) (int64, error) {
	maskedX := ring.Add(xShare, triple.X)
	maskedY := ring.Add(yShare, triple.Y)

	peerMaskedX, peerMaskedY, err := exchangeInt64Vectors(peer, role == 0, maskedX, maskedY)
	if err != nil {
		return 0, err
	}

	result := ring.Dot(xShare, ring.Add(yShare, peerMaskedY)) -
		ring.Dot(triple.Y, peerMaskedX) + triple.C

	return result, nil
}
