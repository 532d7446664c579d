//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Command helper runs the trusted dealer of the three-party
// item-update protocol: it hands both compute servers their
// correlated randomness for each query and never sees a share of
// either matrix.
package main

import (
	"flag"
	"log"

	"github.com/ShriyaGarg10/secrec/env"
	"github.com/ShriyaGarg10/secrec/helper"
	"github.com/ShriyaGarg10/secrec/p2p"
)

func main() {
	listen := flag.String("listen", ":9002", "address this helper listens on")
	numItems := flag.Int("items", 50, "number of items (rows of V)")
	featureDim := flag.Int("features", 3, "feature dimension (columns of U and V)")
	numQueries := flag.Int("queries", 10, "number of queries in the session")
	flag.Parse()

	nw, err := p2p.NewNetwork(*listen, 2)
	if err != nil {
		log.Fatalf("helper: listen: %v", err)
	}
	defer nw.Close()

	log.Printf("helper: waiting for server 0 and server 1...")
	p0 := nw.Peer(0)
	p1 := nw.Peer(1)
	log.Printf("helper: both servers connected")

	cfg := &env.Config{}
	d := &helper.Dealer{
		Rand:       cfg.GetRandom(),
		NumItems:   *numItems,
		FeatureDim: *featureDim,
	}

	if err := d.RunSession(p0.Conn, p1.Conn, *numQueries); err != nil {
		log.Fatalf("helper: %v", err)
	}
	log.Printf("helper: session finished, %d queries", *numQueries)
}
