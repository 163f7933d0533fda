package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// WindowResult is one decoded window's comparison against the reference
// oracle, the unit a CSV report is built from.
type WindowResult struct {
	Iteration    int
	Observations []int
	StandardTime time.Duration
	OnlineTime   time.Duration
	Nodes        int
	Agreed       bool
}

// CSVWriter writes WindowResult rows in the 'iteration, observations,
// standard_time, online_time, nodes' column layout.
type CSVWriter struct {
	w   *csv.Writer
	hdr bool
}

// NewCSVWriter returns a CSVWriter writing to w. The header row is
// written lazily, by the first WriteRow call, ahead of its row.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteRow appends one row for r, flushing after every write so a
// long-running comparison run's CSV stays readable mid-flight.
func (c *CSVWriter) WriteRow(r WindowResult) error {
	if !c.hdr {
		if err := c.w.Write([]string{"iteration", "observations", "standard_time", "online_time", "nodes"}); err != nil {
			return err
		}
		c.hdr = true
	}

	row := []string{
		fmt.Sprintf("%d", r.Iteration),
		fmt.Sprintf("%v", r.Observations),
		fmt.Sprintf("%.8f", r.StandardTime.Seconds()),
		fmt.Sprintf("%.8f", r.OnlineTime.Seconds()),
		fmt.Sprintf("%d", r.Nodes),
	}
	if err := c.w.Write(row); err != nil {
		return err
	}

	c.w.Flush()

	return c.w.Error()
}

// LogSummary logs a one-line slog summary of r: path agreement and both
// decoders' timings for the window.
func LogSummary(logger *slog.Logger, r WindowResult) {
	logger.Info("window decoded",
		"iteration", r.Iteration,
		"agreed", r.Agreed,
		"standard_time", r.StandardTime,
		"online_time", r.OnlineTime,
		"nodes", r.Nodes,
	)
}

// PathsAgree reports whether two decoded state sequences are identical,
// truncated to the shorter of the two (mirroring the reference script's
// min(T, 1000) slice comparison).
func PathsAgree(a, b []int) bool {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
