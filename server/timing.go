//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.

package server

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"

	"github.com/ShriyaGarg10/secrec/p2p"
)

// FileSize formats a byte count for the report's transfer column, the
// way circuit.FileSize formats bytes sent/received by the
// garbled-circuit evaluator.
type FileSize uint64

// String implements fmt.Stringer.
func (s FileSize) String() string {
	switch {
	case s > 1000*1000*1000*1000:
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	case s > 1000*1000*1000:
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	case s > 1000*1000:
		return fmt.Sprintf("%dMB", s/(1000*1000))
	case s > 1000:
		return fmt.Sprintf("%dkB", s/1000)
	default:
		return fmt.Sprintf("%dB", s)
	}
}

// Kind distinguishes the two halves of a query's work, matching the
// original implementation's cumulative_user_time / cumulative_item_time
// split.
type Kind int

const (
	// UserUpdate covers the oblivious lookup, secure dot, and
	// secure scalar-vector call that fold vⱼ into uᵢ.
	UserUpdate Kind = iota
	// ItemUpdate covers the complement scalar-vector call and the
	// per-feature FCW-repair loop that folds uᵢ into every row of V.
	ItemUpdate
)

// Timing records per-query timing samples and renders a profiling
// report, the way circuit.Timing does for the garbled-circuit
// evaluator: each sample's duration runs from the end of the previous
// sample (or from Start, for the first one).
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance, starting the clock now.
func NewTiming() *Timing {
	return &Timing{Start: time.Now()}
}

// Sample records a timing sample with a label, a query phase kind, and
// data columns (this report's single data column holds a cumulative
// transfer snapshot).
func (t *Timing) Sample(label string, kind Kind, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Kind:  kind,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Sample contains information about one timing sample.
type Sample struct {
	Label string
	Kind  Kind
	Start time.Time
	End   time.Time
	Cols  []string
}

// Duration returns the elapsed time the sample covers.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Print renders the profiling report to w: one row per sample with its
// duration and share of the total, the average user-update and
// item-update time the original implementation's two chrono timers
// report at session end, a bold Total row, and the Sent/Rcvd/Flcd
// breakdown of stats, the way circuit.Timing.Print renders its table.
func (t *Timing) Print(w io.Writer, stats p2p.IOStats) {
	if len(t.Samples) == 0 {
		return
	}

	sent := stats.Sent.Load()
	received := stats.Recvd.Load()
	flushed := stats.Flushed.Load()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Xfer").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)

	var userTotal, itemTotal time.Duration
	var userCount, itemCount int

	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%", float64(duration)/float64(total)*100))

		for _, col := range sample.Cols {
			row.Column(col)
		}

		switch sample.Kind {
		case UserUpdate:
			userTotal += duration
			userCount++
		case ItemUpdate:
			itemTotal += duration
			itemCount++
		}
	}

	if userCount > 0 {
		row := tab.Row()
		row.Column("Avg user update").SetFormat(tabulate.FmtItalic)
		row.Column((userTotal / time.Duration(userCount)).String()).
			SetFormat(tabulate.FmtItalic)
	}
	if itemCount > 0 {
		row := tab.Row()
		row.Column("Avg item update").SetFormat(tabulate.FmtItalic)
		row.Column((itemTotal / time.Duration(itemCount)).String()).
			SetFormat(tabulate.FmtItalic)
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(sent + received).String()).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("├╴Sent").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column(fmt.Sprintf("%.2f%%", float64(sent)/float64(sent+received)*100)).
		SetFormat(tabulate.FmtItalic)
	row.Column(FileSize(sent).String()).SetFormat(tabulate.FmtItalic)

	row = tab.Row()
	row.Column("├╴Rcvd").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column(fmt.Sprintf("%.2f%%", float64(received)/float64(sent+received)*100)).
		SetFormat(tabulate.FmtItalic)
	row.Column(FileSize(received).String()).SetFormat(tabulate.FmtItalic)

	row = tab.Row()
	row.Column("╰╴Flcd").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%v", flushed)).SetFormat(tabulate.FmtItalic)

	tab.Print(w)
}
