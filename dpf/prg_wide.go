//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package dpf

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// widePRGInfo is the HKDF "info" domain separator for the wide-seed
// PRG; it has no secrecy requirement, only uniqueness.
var widePRGInfo = []byte("mpc-reco/dpf/wide-prg/v1")

// WidePRG is the wide-seed PRG flavor of §4.1/§9: a cryptographic
// hash of the seed bytes, expanded with HKDF. Its seeds are 64 bits
// wide (the uint64 of the PRG interface), not 128. It is the flavor the
// out-of-scope query-and-share generator uses to build key files
// before distribution; it is kept here as the DPF module's second PRG
// instance so the PRG interface has two independently testable
// implementations, not because the servers or helper call it at
// runtime (they only ever evaluate the small-seed flavor of
// prg_small.go).
type WidePRG struct{}

// NewWidePRG creates the wide-seed reference PRG.
func NewWidePRG() *WidePRG {
	return &WidePRG{}
}

// Expand implements PRG.
func (p *WidePRG) Expand(seed uint64) ChildSeeds {
	var ikm [8]byte
	binary.BigEndian.PutUint64(ikm[:], seed)

	r := hkdf.New(sha256.New, ikm[:], nil, widePRGInfo)

	var out [18]byte
	if _, err := io.ReadFull(r, out[:]); err != nil {
		// hkdf.New's Reader only fails once its output limit is
		// exhausted; 18 bytes is far below SHA-256's limit.
		panic(err)
	}

	return ChildSeeds{
		SLeft:  binary.BigEndian.Uint64(out[0:8]),
		SRight: binary.BigEndian.Uint64(out[8:16]),
		FLeft:  out[16]&1 == 1,
		FRight: out[17]&1 == 1,
	}
}

// RandomSeed implements PRG: seeds span the full 64-bit word.
func (p *WidePRG) RandomSeed(rnd io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rnd, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// RandomMask implements PRG: masks span the full signed 64-bit ring.
func (p *WidePRG) RandomMask(rnd io.Reader) (int64, error) {
	v, err := p.RandomSeed(rnd)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
