//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.

// Package env implements the global environment for the MPC system.
package env

import (
	"crypto/rand"
	"io"
	mrand "math/rand/v2"
)

// Config defines the global system configuration shared by the
// servers, the helper, and the cryptographic primitives they call.
// Config must not be modified after being passed to any MPC module.
// It is safe for concurrent use by multiple modules as they do not
// modify it.
type Config struct {
	// Rand is the source of entropy for key generation, triple
	// generation, and other randomized steps. Production processes
	// must leave this nil so GetRandom falls back to system entropy;
	// tests may inject a deterministic reader so a run can be
	// reproduced.
	Rand io.Reader
}

// GetRandom returns the configured source of entropy, defaulting to
// the operating system's CSPRNG.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// DeterministicRand returns an io.Reader backed by a seeded PRNG.
// It exists for tests and reproducible benchmarks only; production
// processes must not seed Config.Rand from a fixed constant.
func DeterministicRand(seed uint64) io.Reader {
	return &chaReader{src: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type chaReader struct {
	src *mrand.Rand
}

func (r *chaReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Uint32())
	}
	return len(p), nil
}
