//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package server

import (
	"fmt"
	"io"

	"github.com/ShriyaGarg10/secrec/p2p"
)

// PrintReport renders a session summary: the query count, then the
// per-query user-update/item-update timing breakdown, rendered against
// the combined peer+helper transfer stats, the way circuit.Timing.Print
// renders its profiling table for operators running with -v.
func PrintReport(w io.Writer, role int, numQueries int, timing *Timing, peer, helper p2p.IOStats) error {
	fmt.Fprintf(w, "server %d: processed %d queries\n", role, numQueries)
	timing.Print(w, peer.Add(helper))
	return nil
}
