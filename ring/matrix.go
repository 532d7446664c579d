//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package ring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Matrix is a dense row-major matrix of ring elements: one server's
// additive share of the user-profile matrix U or the item-profile
// matrix V.
type Matrix []Vector

// NewMatrix allocates a rows x cols matrix of zeroes.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make(Vector, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column returns a fresh copy of column f.
func (m Matrix) Column(f int) Vector {
	col := make(Vector, len(m))
	for i, row := range m {
		col[i] = row[f]
	}
	return col
}

// AddColumn adds delta into column f in place.
func (m Matrix) AddColumn(f int, delta Vector) {
	for i, row := range m {
		row[f] += delta[i]
	}
}

// LoadMatrix reads a matrix share from the text format of §6: one
// row per line, space-separated unsigned 32-bit decimals, loaded as
// signed 64-bit shares by sign-extending through int32.
func LoadMatrix(path string, rows, cols int) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ring: open %s: %w", path, err)
	}
	defer f.Close()

	m := NewMatrix(rows, cols)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for i := 0; i < rows; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("ring: %s: expected %d rows, got %d",
				path, rows, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != cols {
			return nil, fmt.Errorf("ring: %s: row %d: expected %d columns, got %d",
				path, i, cols, len(fields))
		}
		for j, field := range fields {
			v, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("ring: %s: row %d col %d: %w",
					path, i, j, err)
			}
			m[i][j] = FromU32(uint32(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ring: %s: %w", path, err)
	}
	return m, nil
}

// SaveMatrix writes a matrix share in the text format of §6,
// truncating each ring element to its public u32 representation.
func SaveMatrix(path string, m Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ring: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteMatrix(w, m); err != nil {
		return err
	}
	return w.Flush()
}

// WriteMatrix writes m to w in the §6 text format.
func WriteMatrix(w io.Writer, m Matrix) error {
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", ToU32(v)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
