//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Command server runs one compute server of the three-party
// item-update protocol.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/markkurossi/text/superscript"

	"github.com/ShriyaGarg10/secrec/dpf"
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/query"
	"github.com/ShriyaGarg10/secrec/ring"
	"github.com/ShriyaGarg10/secrec/server"
)

const helperID = 2

func main() {
	role := flag.Int("role", 0, "server role: 0 or 1")
	listen := flag.String("listen", ":9001", "address this server listens on")
	peerAddr := flag.String("peer", "localhost:9001", "peer server address (role 0 dials it)")
	helperAddr := flag.String("helper", "localhost:9002", "helper address")
	dataDir := flag.String("data", ".", "directory holding U/V shares and the query file")
	numUsers := flag.Int("users", 10, "number of users (rows of U)")
	numItems := flag.Int("items", 50, "number of items (rows of V)")
	featureDim := flag.Int("features", 3, "feature dimension (columns of U and V)")
	verbose := flag.Bool("v", false, "print a per-query trace and the session I/O report")
	flag.Parse()

	if *role != 0 && *role != 1 {
		log.Fatalf("server: -role must be 0 or 1")
	}

	label := superscript.Itoa(*role)

	nw, err := p2p.NewNetwork(*listen, *role)
	if err != nil {
		log.Fatalf("server%s: listen: %v", label, err)
	}
	defer nw.Close()

	if err := nw.AddPeer(*helperAddr, helperID); err != nil {
		log.Fatalf("server%s: connect to helper: %v", label, err)
	}
	if *role == 0 {
		if err := nw.AddPeer(*peerAddr, 1); err != nil {
			log.Fatalf("server%s: connect to peer: %v", label, err)
		}
	}

	peer := nw.Peer(1 - *role)
	helperPeer := nw.Peer(helperID)
	log.Printf("server%s: connected to peer and helper", label)

	users, err := ring.LoadMatrix(filepath.Join(*dataDir, fmt.Sprintf("U%d.txt", *role)), *numUsers, *featureDim)
	if err != nil {
		log.Fatalf("server%s: load U: %v", label, err)
	}
	items, err := ring.LoadMatrix(filepath.Join(*dataDir, fmt.Sprintf("V%d.txt", *role)), *numItems, *featureDim)
	if err != nil {
		log.Fatalf("server%s: load V: %v", label, err)
	}

	queryFile, err := os.Open(filepath.Join(*dataDir, fmt.Sprintf("queries_p%d.bin", *role)))
	if err != nil {
		log.Fatalf("server%s: open query file: %v", label, err)
	}
	queries, err := query.ReadAll(queryFile)
	queryFile.Close()
	if err != nil {
		log.Fatalf("server%s: read queries: %v", label, err)
	}
	log.Printf("server%s: loaded %d queries", label, len(queries))

	proc := &server.Processor{
		Role:    *role,
		Peer:    peer.Conn,
		Helper:  helperPeer.Conn,
		PRG:     dpf.NewSmallPRG(),
		Users:   users,
		Items:   items,
		Verbose: *verbose,
	}
	if *verbose {
		proc.Timing = server.NewTiming()
	}

	if err := proc.ProcessAll(queries); err != nil {
		log.Fatalf("server%s: %v", label, err)
	}
	log.Printf("server%s: all queries processed", label)

	if err := ring.SaveMatrix(filepath.Join(*dataDir, fmt.Sprintf("U%d_updated.txt", *role)), users); err != nil {
		log.Fatalf("server%s: save U: %v", label, err)
	}
	if err := ring.SaveMatrix(filepath.Join(*dataDir, fmt.Sprintf("V%d_updated.txt", *role)), items); err != nil {
		log.Fatalf("server%s: save V: %v", label, err)
	}

	if *verbose {
		if err := server.PrintReport(os.Stdout, *role, len(queries), proc.Timing, peer.Conn.Stats, helperPeer.Conn.Stats); err != nil {
			log.Printf("server%s: report: %v", label, err)
		}
	}
}
