//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package dpf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes k to w in the fixed binary layout query files persist
// DPF keys in (§6): uint64 SRoot, uint8 FRoot,
// int64 FCW, int32 Sign, uint64 len(CWs), then len(CWs) correction
// words, each uint64 SCW, uint8 FCWLeft, uint8 FCWRight.
func (k Key) Encode(w io.Writer) error {
	var hdr [8 + 1 + 8 + 4 + 8]byte
	binary.BigEndian.PutUint64(hdr[0:8], k.SRoot)
	if k.FRoot {
		hdr[8] = 1
	}
	binary.BigEndian.PutUint64(hdr[9:17], uint64(k.FCW))
	binary.BigEndian.PutUint32(hdr[17:21], uint32(k.Sign))
	binary.BigEndian.PutUint64(hdr[21:29], uint64(len(k.CWs)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	for _, cw := range k.CWs {
		var buf [8 + 1 + 1]byte
		binary.BigEndian.PutUint64(buf[0:8], cw.SCW)
		if cw.FCWLeft {
			buf[8] = 1
		}
		if cw.FCWRight {
			buf[9] = 1
		}
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeKey reads a Key in the layout Encode wrote.
func DecodeKey(r io.Reader) (Key, error) {
	var hdr [8 + 1 + 8 + 4 + 8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Key{}, err
	}

	var k Key
	k.SRoot = binary.BigEndian.Uint64(hdr[0:8])
	k.FRoot = hdr[8] != 0
	k.FCW = int64(binary.BigEndian.Uint64(hdr[9:17]))
	k.Sign = int64(int32(binary.BigEndian.Uint32(hdr[17:21])))
	cwLen := binary.BigEndian.Uint64(hdr[21:29])

	// A corrupt or foreign file could claim an enormous cws_len; cap
	// it well above any depth this protocol ever produces (64 covers
	// a domain of 2^64 items) so a bad length fails fast instead of
	// exhausting memory.
	const maxDepth = 64
	if cwLen > maxDepth {
		return Key{}, fmt.Errorf("dpf: implausible correction word count %d", cwLen)
	}

	k.CWs = make([]CorrectionWord, cwLen)
	for i := range k.CWs {
		var buf [8 + 1 + 1]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Key{}, err
		}
		k.CWs[i] = CorrectionWord{
			SCW:      binary.BigEndian.Uint64(buf[0:8]),
			FCWLeft:  buf[8] != 0,
			FCWRight: buf[9] != 0,
		}
	}
	return k, nil
}
