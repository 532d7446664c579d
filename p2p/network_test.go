//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package p2p

import (
	"testing"
)

func TestNetworkConnectAndExchange(t *testing.T) {
	nwA, err := NewNetwork("127.0.0.1:0", 0)
	if err != nil {
		t.Fatalf("NewNetwork A: %v", err)
	}
	defer nwA.Close()

	nwB, err := NewNetwork("127.0.0.1:0", 1)
	if err != nil {
		t.Fatalf("NewNetwork B: %v", err)
	}
	defer nwB.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- nwA.AddPeer(nwB.Addr(), 1)
	}()

	peerOfA := nwA.Peer(1)
	peerOfB := nwB.Peer(0)

	if err := <-errCh; err != nil {
		t.Fatalf("AddPeer: %v", err)
	}

	if err := peerOfA.Conn.SendString("hello"); err != nil {
		t.Fatalf("SendString: %v", err)
	}
	if err := peerOfA.Conn.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got, err := peerOfB.Conn.ReceiveString()
	if err != nil {
		t.Fatalf("ReceiveString: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}

	if peerOfA.String() != "peer 1" {
		t.Errorf("Peer.String() = %q, want %q", peerOfA.String(), "peer 1")
	}
}
