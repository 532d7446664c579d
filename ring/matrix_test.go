//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package ring

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadMatrixRoundTrip(t *testing.T) {
	m := Matrix{
		{1, 0},
		{0, 1},
		{2, 2},
		{-1, 1},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "V0.txt")

	if err := SaveMatrix(path, m); err != nil {
		t.Fatalf("SaveMatrix: %v", err)
	}

	got, err := LoadMatrix(path, m.Rows(), m.Cols())
	if err != nil {
		t.Fatalf("LoadMatrix: %v", err)
	}

	for i := range m {
		for j := range m[i] {
			if got[i][j] != m[i][j] {
				t.Errorf("[%d][%d] = %d, want %d", i, j, got[i][j], m[i][j])
			}
		}
	}
}

func TestWriteMatrixFormat(t *testing.T) {
	m := Matrix{{3, 1}}
	var buf bytes.Buffer
	if err := WriteMatrix(&buf, m); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	want := "3 1\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestColumnAndAddColumn(t *testing.T) {
	m := NewMatrix(3, 2)
	m[0] = Vector{1, 10}
	m[1] = Vector{2, 20}
	m[2] = Vector{3, 30}

	col := m.Column(0)
	want := Vector{1, 2, 3}
	for i := range col {
		if col[i] != want[i] {
			t.Fatalf("Column(0)[%d] = %d, want %d", i, col[i], want[i])
		}
	}

	m.AddColumn(0, Vector{100, 100, 100})
	wantAfter := Vector{101, 102, 103}
	for i := range m {
		if m[i][0] != wantAfter[i] {
			t.Fatalf("after AddColumn m[%d][0] = %d, want %d", i, m[i][0], wantAfter[i])
		}
	}
}

func TestLoadMatrixDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatrix(path, 1, 2); err == nil {
		t.Error("expected dimension mismatch error, got nil")
	}
}
