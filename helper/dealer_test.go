//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package helper

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/ShriyaGarg10/secrec/gadgets"
	"github.com/ShriyaGarg10/secrec/p2p"
	"github.com/ShriyaGarg10/secrec/ring"
)

// prngReader adapts a math/rand source to io.Reader for deterministic
// dealer tests; production Dealers must be given a CSPRNG.
type prngReader struct {
	r *rand.Rand
}

func (p *prngReader) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = byte(p.r.Intn(256))
	}
	return len(buf), nil
}

func TestDealerSendQueryMaterialIsConsistent(t *testing.T) {
	const numItems = 5
	const featureDim = 3

	d := &Dealer{
		Rand:       &prngReader{r: rand.New(rand.NewSource(11))},
		NumItems:   numItems,
		FeatureDim: featureDim,
	}

	dealerConn0, serverConn0 := p2p.Pipe()
	dealerConn1, serverConn1 := p2p.Pipe()
	defer dealerConn0.Close()
	defer dealerConn1.Close()
	defer serverConn0.Close()
	defer serverConn1.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.SendQuery(dealerConn0, dealerConn1)
	}()

	// Each server's reader: mirrors Processor.ProcessQuery's consumption order.
	type received struct {
		rot      gadgets.RotationMaterial
		lookup   []gadgets.DotTriple
		dotTrip  gadgets.DotTriple
		scale1   gadgets.ScalarVecTriple
		scale2   gadgets.ScalarVecTriple
		err      error
	}

	read := func(conn *p2p.Conn) received {
		var rcv received
		rcv.rot, rcv.err = gadgets.ReceiveRotationMaterial(conn)
		if rcv.err != nil {
			return rcv
		}
		rcv.lookup = make([]gadgets.DotTriple, featureDim)
		for f := 0; f < featureDim; f++ {
			rcv.lookup[f], rcv.err = gadgets.ReceiveDotTriple(conn)
			if rcv.err != nil {
				return rcv
			}
		}
		rcv.dotTrip, rcv.err = gadgets.ReceiveDotTriple(conn)
		if rcv.err != nil {
			return rcv
		}
		rcv.scale1, rcv.err = gadgets.ReceiveScalarVecTriple(conn)
		if rcv.err != nil {
			return rcv
		}
		rcv.scale2, rcv.err = gadgets.ReceiveScalarVecTriple(conn)
		return rcv
	}

	ch0 := make(chan received, 1)
	ch1 := make(chan received, 1)
	go func() { ch0 <- read(serverConn0) }()
	go func() { ch1 <- read(serverConn1) }()

	r0 := <-ch0
	r1 := <-ch1
	if err := <-errCh; err != nil {
		t.Fatalf("SendQuery: %v", err)
	}
	if r0.err != nil {
		t.Fatalf("server 0 read: %v", r0.err)
	}
	if r1.err != nil {
		t.Fatalf("server 1 read: %v", r1.err)
	}

	// Rotation: the shares must sum to a one-hot vector, and Base0 +
	// Base1 must recover the same index the one-hot vector encodes.
	sumVec := ring.Add(r0.rot.Vec, r1.rot.Vec)
	oneCount := 0
	index := -1
	for i, v := range sumVec {
		if v == 1 {
			oneCount++
			index = i
		} else if v != 0 {
			t.Fatalf("rotation one-hot sum has non-0/1 entry %d at %d", v, i)
		}
	}
	if oneCount != 1 {
		t.Fatalf("rotation one-hot sum has %d ones, want 1", oneCount)
	}
	if int(r0.rot.Base+r1.rot.Base) != index {
		t.Fatalf("rotation base shares sum to %d, want %d", r0.rot.Base+r1.rot.Base, index)
	}

	// Each lookup dot triple's C shares must cancel the cross terms:
	// for any x, y split consistently with the triple's own X/Y, the
	// SecureDot formula (exercised fully in package gadgets) must
	// recover the right answer. Here we only check the triple
	// generation invariant C0 + C1 == dot(X0,Y1) + dot(X1,Y0).
	checkDotTriple := func(t0, t1 gadgets.DotTriple) bool {
		want := ring.Dot(t0.X, t1.Y) + ring.Dot(t1.X, t0.Y)
		return t0.C+t1.C == want
	}
	for f := 0; f < featureDim; f++ {
		if !checkDotTriple(r0.lookup[f], r1.lookup[f]) {
			t.Errorf("lookup triple %d fails Beaver invariant", f)
		}
	}
	if !checkDotTriple(r0.dotTrip, r1.dotTrip) {
		t.Errorf("inner product triple fails Beaver invariant")
	}

	// Each scalar-vector triple's R shares must cancel: R0 + R1 ==
	// X1*Y0 + X0*Y1.
	checkScalarVecTriple := func(t0, t1 gadgets.ScalarVecTriple) bool {
		want := ring.Add(ring.ScalarMul(t0.Y, t1.X), ring.ScalarMul(t1.Y, t0.X))
		got := ring.Add(t0.R, t1.R)
		return bytes.Equal(int64sToBytes(got), int64sToBytes(want))
	}
	if !checkScalarVecTriple(r0.scale1, r1.scale1) {
		t.Errorf("first scalar-vec triple fails Beaver invariant")
	}
	if !checkScalarVecTriple(r0.scale2, r1.scale2) {
		t.Errorf("second scalar-vec triple fails Beaver invariant")
	}
}

func int64sToBytes(v ring.Vector) []byte {
	out := make([]byte, 0, len(v)*8)
	for _, x := range v {
		for i := 7; i >= 0; i-- {
			out = append(out, byte(x>>(8*i)))
		}
	}
	return out
}
