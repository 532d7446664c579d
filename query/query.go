//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

// Package query implements the per-server query file: the sequence
// of item-update requests one server's process replays at startup,
// each carrying the requesting user's index (public, the same in both
// servers' files), a share of the target item's index, and this
// server's half of the DPF key
// that encodes the update into the item matrix (§6).
package query

import (
	"encoding/binary"
	"io"

	"github.com/ShriyaGarg10/secrec/dpf"
)

// Query is one record of a query file: the work for a single update.
type Query struct {
	UserIndex uint32
	ItemShare int64
	DPFKey    dpf.Key
}

// Write appends q to w in the fixed binary layout: uint32 UserIndex,
// int64 ItemShare, then the DPF key (dpf.Key.Encode).
func Write(w io.Writer, q Query) error {
	var hdr [4 + 8]byte
	binary.BigEndian.PutUint32(hdr[0:4], q.UserIndex)
	binary.BigEndian.PutUint64(hdr[4:12], uint64(q.ItemShare))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	return q.DPFKey.Encode(w)
}

// Read reads one Query in the layout Write wrote.
func Read(r io.Reader) (Query, error) {
	var hdr [4 + 8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Query{}, err
	}
	k, err := dpf.DecodeKey(r)
	if err != nil {
		return Query{}, err
	}
	return Query{
		UserIndex: binary.BigEndian.Uint32(hdr[0:4]),
		ItemShare: int64(binary.BigEndian.Uint64(hdr[4:12])),
		DPFKey:    k,
	}, nil
}

// ReadAll reads every Query in r until EOF, matching the reference
// loader's "peek for EOF, otherwise parse one record" loop.
func ReadAll(r io.Reader) ([]Query, error) {
	var queries []Query
	for {
		q, err := Read(r)
		if err == io.EOF {
			return queries, nil
		}
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
}

// WriteAll writes every query in queries to w, in order.
func WriteAll(w io.Writer, queries []Query) error {
	for _, q := range queries {
		if err := Write(w, q); err != nil {
			return err
		}
	}
	return nil
}
