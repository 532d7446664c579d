//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package dpf

import "io"

// CorrectionWord is the per-level adjustment both keys of a pair
// carry identically, keeping their off-path seeds equal and flipping
// the on-path flag by one (§3).
type CorrectionWord struct {
	SCW      uint64
	FCWLeft  bool
	FCWRight bool
}

// Key is one of the two distributed point function keys for a point
// at leaf j with additively-shared value v. The two keys produced by
// Gen are bit-identical in their CWs slice and differ in SRoot,
// FRoot, FCW, and Sign.
type Key struct {
	SRoot uint64
	FRoot bool
	CWs   []CorrectionWord
	FCW   int64
	Sign  int64
}

// Clone returns a deep copy of k, safe to mutate independently (used
// by the per-feature FCW-repair loop, which must not disturb the
// original key while repairing a throwaway copy for the next
// feature).
func (k Key) Clone() Key {
	out := k
	out.CWs = make([]CorrectionWord, len(k.CWs))
	copy(out.CWs, k.CWs)
	return out
}

// Depth returns the DPF tree depth for a domain of size n: ceil(log2 n),
// with a minimum of 1 (§4.1).
func Depth(n int) int {
	if n <= 2 {
		return 1
	}
	d := 0
	for (1 << d) < n {
		d++
	}
	return d
}

// Gen generates the pair of DPF keys encoding value v at index j over
// a domain of size n.
func Gen(rnd io.Reader, prg PRG, j uint64, v int64, n int) (k0, k1 Key, err error) {
	depth := Depth(n)

	s0, err := prg.RandomSeed(rnd)
	if err != nil {
		return Key{}, Key{}, err
	}
	s1, err := prg.RandomSeed(rnd)
	if err != nil {
		return Key{}, Key{}, err
	}
	f0, f1 := false, true

	k0.SRoot, k1.SRoot = s0, s1
	k0.FRoot, k1.FRoot = f0, f1

	cws := make([]CorrectionWord, depth)

	for level := 0; level < depth; level++ {
		pathBit := (j>>(depth-1-level))&1 == 1

		c0 := prg.Expand(s0)
		c1 := prg.Expand(s1)

		var cw CorrectionWord
		cw.FCWLeft = (c0.FLeft != c1.FLeft) != !pathBit
		cw.FCWRight = (c0.FRight != c1.FRight) != pathBit
		if pathBit {
			cw.SCW = c0.SLeft ^ c1.SLeft
		} else {
			cw.SCW = c0.SRight ^ c1.SRight
		}

		var s0n, s1n uint64
		var f0n, f1n bool
		if pathBit {
			s0n, f0n = c0.SRight, c0.FRight
			s1n, f1n = c1.SRight, c1.FRight
		} else {
			s0n, f0n = c0.SLeft, c0.FLeft
			s1n, f1n = c1.SLeft, c1.FLeft
		}

		fcw := cw.FCWLeft
		if pathBit {
			fcw = cw.FCWRight
		}

		if f0 {
			s0n ^= cw.SCW
			f0n = f0n != fcw
		}
		if f1 {
			s1n ^= cw.SCW
			f1n = f1n != fcw
		}

		s0, f0 = s0n, f0n
		s1, f1 = s1n, f1n
		cws[level] = cw
	}

	k0.CWs = cws
	k1.CWs = cws

	R, err := prg.RandomMask(rnd)
	if err != nil {
		return Key{}, Key{}, err
	}

	if f0 {
		k0.Sign = 1
	} else {
		k0.Sign = -1
	}
	if f1 {
		k1.Sign = 1
	} else {
		k1.Sign = -1
	}

	k0.FCW = R + k0.Sign*int64(s0)
	k1.FCW = (v - R) + k1.Sign*int64(s1)

	return k0, k1, nil
}

// Eval evaluates key k at leaf idx over a domain of size n.
func Eval(prg PRG, k Key, idx uint64, n int) int64 {
	depth := Depth(n)

	s := k.SRoot
	f := k.FRoot

	for level := 0; level < depth; level++ {
		pathBit := (idx>>(depth-1-level))&1 == 1
		c := prg.Expand(s)

		var sNext uint64
		var fNext bool
		if pathBit {
			sNext, fNext = c.SRight, c.FRight
		} else {
			sNext, fNext = c.SLeft, c.FLeft
		}

		if f {
			sNext ^= k.CWs[level].SCW
			fcw := k.CWs[level].FCWLeft
			if pathBit {
				fcw = k.CWs[level].FCWRight
			}
			fNext = fNext != fcw
		}

		s, f = sNext, fNext
	}

	value := int64(s)
	if f {
		value += k.FCW
	}
	return value * k.Sign
}

// EvalFull evaluates k at every leaf 0..n-1 (§4.1).
func EvalFull(prg PRG, k Key, n int) []int64 {
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = Eval(prg, k, uint64(i), n)
	}
	return out
}

// RepairMessage computes the value this party sends to its peer to
// repair k's FCW to a new additively-shared target. delta is this
// party's share of (v_new - v_old); since every key in this system is
// generated with v_old = 0 (§4.1), delta is simply this party's share
// of the new target value.
func RepairMessage(k Key, delta int64) int64 {
	return delta - k.FCW
}

// Repair returns a copy of k with FCW replaced from this party's and
// the peer's repair messages. Both parties must call Repair with the
// same pair of messages (in either order, addition commutes) for the
// two repaired keys to agree on the new encoded value (§4.1, P2).
func Repair(k Key, localMsg, peerMsg int64) Key {
	repaired := k.Clone()
	repaired.FCW = localMsg + peerMsg
	return repaired
}
