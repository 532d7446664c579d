//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package dpf

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"
)

// domainKey is a fixed, public AES key used only for domain
// separation of the small-seed PRG's output stream. It carries no
// secrecy of its own: SmallPRG's security margin comes from the
// helper's one-hot masking (§3), not from this key.
var domainKey = [16]byte{
	'm', 'p', 'c', '-', 'r', 'e', 'c', 'o',
	'-', 'i', 't', 'e', 'm', '-', 'd', 'p',
}

// SmallPRG is the online item-update DPF's PRG: an 8-bit seed domain
// expanded through AES-CTR. This mirrors the small-seed PRG the
// protocol's key files already commit to (§9, "Open question —
// small-seed PRG security") and is intentionally not a
// cryptographically strong PRG at this seed width; a production
// variant would widen the seed and is a separate PRG, not a silent
// upgrade of this one.
type SmallPRG struct {
	block cipher.Block
}

// NewSmallPRG creates the small-seed PRG used by the item-update DPF.
func NewSmallPRG() *SmallPRG {
	block, err := aes.NewCipher(domainKey[:])
	if err != nil {
		// domainKey is a fixed 16-byte key; aes.NewCipher cannot fail.
		panic(err)
	}
	return &SmallPRG{block: block}
}

// Expand implements PRG.
func (p *SmallPRG) Expand(seed uint64) ChildSeeds {
	var iv [16]byte
	binary.BigEndian.PutUint64(iv[8:], seed&0xff)

	stream := cipher.NewCTR(p.block, iv[:])
	var out [4]byte
	stream.XORKeyStream(out[:], out[:])

	return ChildSeeds{
		SLeft:  uint64(out[0]),
		SRight: uint64(out[1]),
		FLeft:  out[2]&1 == 1,
		FRight: out[3]&1 == 1,
	}
}

// RandomSeed implements PRG: seeds live in [0, 255].
func (p *SmallPRG) RandomSeed(rnd io.Reader) (uint64, error) {
	b, err := readByte(rnd)
	if err != nil {
		return 0, err
	}
	return uint64(b), nil
}

// RandomMask implements PRG: masks live in [-128, 127], matching the
// seed domain's width.
func (p *SmallPRG) RandomMask(rnd io.Reader) (int64, error) {
	b, err := readByte(rnd)
	if err != nil {
		return 0, err
	}
	return int64(int8(b)), nil
}
