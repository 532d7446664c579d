//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Package server implements one compute server's side of the
// three-party item-update protocol: it holds additive shares of the
// user-profile matrix U and the item-profile matrix V, and for each
// incoming query retrieves an item's profile obliviously, folds it
// into the requesting user's profile, and folds the complementary
// update back into the item matrix without either server, or the
// helper, learning which item was touched or what either profile
// contains (§4.3).
package server

import (
	"fmt"

	"github.com/markkurossi/text/superscript"

	"github.com/ShriyaGarg10/secrec/dpf"
	"github.com/ShriyaGarg10/secrec/gadgets"
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/query"
	"github.com/ShriyaGarg10/secrec/ring"
)

// Processor runs the query loop for one server. Role is 0 or 1 and
// fixes which side of every masked exchange this process is on.
type Processor struct {
	Role    int
	Peer    *p2p.Conn
	Helper  *p2p.Conn
	PRG     dpf.PRG
	Users   ring.Matrix
	Items   ring.Matrix
	Verbose bool

	// Timing collects per-query timing samples if set. Nil disables
	// sampling; cmd/server sets it whenever a session-end report is
	// requested.
	Timing *Timing

	queryCount int
}

// IDString returns the server's role as a superscript-decorated
// string, the way bmr.Player.IDString renders its player ID.
func (p *Processor) IDString() string {
	return superscript.Itoa(p.Role)
}

// Debugf prints a diagnostic line if Verbose is set, the way
// bmr.Player.Debugf gates its own per-wire traces.
func (p *Processor) Debugf(format string, a ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// ProcessQuery applies one item-update query to Users and Items, in
// place. The caller must have the matching peer server and helper
// running the same query at the same point in their own query lists;
// the three processes exchange a fixed sequence of helper triples and
// peer-masked values that must line up call for call.
func (p *Processor) ProcessQuery(q query.Query) error {
	featureDim := p.Items.Cols()
	numItems := p.Items.Rows()

	// The snapshot the u*(1-dot) step below needs: the item-profile
	// fold-in mutates Users[q.UserIndex] before that step runs.
	userProfile := p.Users[q.UserIndex].Clone()

	rotMat, err := gadgets.ReceiveRotationMaterial(p.Helper)
	if err != nil {
		return fmt.Errorf("server: receive rotation material: %w", err)
	}

	lookupTriples := make([]gadgets.DotTriple, featureDim)
	for f := 0; f < featureDim; f++ {
		lookupTriples[f], err = gadgets.ReceiveDotTriple(p.Helper)
		if err != nil {
			return fmt.Errorf("server: receive lookup triple %d: %w", f, err)
		}
	}

	itemProfile, err := gadgets.ObliviousLookup(p.Peer, p.Role, q.ItemShare, p.Items, rotMat, lookupTriples)
	if err != nil {
		return fmt.Errorf("server: oblivious lookup: %w", err)
	}

	dotTriple, err := gadgets.ReceiveDotTriple(p.Helper)
	if err != nil {
		return fmt.Errorf("server: receive inner product triple: %w", err)
	}
	innerProductShare, err := gadgets.SecureDot(p.Peer, p.Role, userProfile, itemProfile, dotTriple)
	if err != nil {
		return fmt.Errorf("server: secure dot: %w", err)
	}

	scaleTriple, err := gadgets.ReceiveScalarVecTriple(p.Helper)
	if err != nil {
		return fmt.Errorf("server: receive scale triple: %w", err)
	}
	scaledItemProfile, err := gadgets.SecureScalarVec(p.Peer, p.Role, innerProductShare, itemProfile, scaleTriple)
	if err != nil {
		return fmt.Errorf("server: secure scalar-vec (v*dot): %w", err)
	}

	p.Users[q.UserIndex] = ring.Sub(ring.Add(userProfile, itemProfile), scaledItemProfile)

	if p.Timing != nil {
		p.Timing.Sample(fmt.Sprintf("query %d: user update", p.queryCount), UserUpdate,
			[]string{FileSize(p.Peer.Stats.Sum() + p.Helper.Stats.Sum()).String()})
	}

	complementShare := int64(p.Role) - innerProductShare

	updateTriple, err := gadgets.ReceiveScalarVecTriple(p.Helper)
	if err != nil {
		return fmt.Errorf("server: receive update triple: %w", err)
	}
	updateVector, err := gadgets.SecureScalarVec(p.Peer, p.Role, complementShare, userProfile, updateTriple)
	if err != nil {
		return fmt.Errorf("server: secure scalar-vec (u*(1-dot)): %w", err)
	}

	for f := 0; f < featureDim; f++ {
		localMsg := dpf.RepairMessage(q.DPFKey, updateVector[f])
		peerMsg, err := gadgets.ExchangeInt64(p.Peer, p.Role == 0, localMsg)
		if err != nil {
			return fmt.Errorf("server: repair exchange feature %d: %w", f, err)
		}
		repaired := dpf.Repair(q.DPFKey, localMsg, peerMsg)
		delta := dpf.EvalFull(p.PRG, repaired, numItems)
		p.Items.AddColumn(f, ring.Vector(delta))
	}

	if p.Timing != nil {
		p.Timing.Sample(fmt.Sprintf("query %d: item update", p.queryCount), ItemUpdate,
			[]string{FileSize(p.Peer.Stats.Sum() + p.Helper.Stats.Sum()).String()})
	}
	p.queryCount++

	return nil
}

// ProcessAll runs ProcessQuery over every query in order.
func (p *Processor) ProcessAll(queries []query.Query) error {
	for i, q := range queries {
		p.Debugf("%c%s: query %d: user=%d item_share=%d\n", 'Δ', p.IDString(), i, q.UserIndex, q.ItemShare)
		if err := p.ProcessQuery(q); err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
	}
	return nil
}
