package oviterbi

import (
	"errors"
	"fmt"

	"github.com/mlanger/oviterbi/blog"
	"github.com/mlanger/oviterbi/column"
	"github.com/mlanger/oviterbi/hmm"
	"github.com/mlanger/oviterbi/survivor"
)

// ErrOutOfOrder indicates that Update was called with a t that does not
// match the next expected step since the most recent Initialization.
var ErrOutOfOrder = errors.New("oviterbi: update out of order")

// ErrNotInitialized indicates that TracebackLastPart was called with no
// columns buffered, i.e. before any successful Initialization.
var ErrNotInitialized = errors.New("oviterbi: traceback_last_part called before any update")

// Decoder is the online Viterbi decoder for a K-state HMM over a nominal
// T-step window. It holds only the columns and survivor-graph nodes that
// have not yet converged onto a decoded prefix, so its memory footprint
// tracks the convergence lag rather than T.
type Decoder struct {
	k, t int

	columns *column.Store
	graph   *survivor.Graph

	root, prevRoot *survivor.Node
	expectedT      int

	decodedStream []int
}

// New returns a Decoder sized for k hidden states over a nominal window
// of t steps. t bounds the terminal flush performed by TracebackLastPart;
// it does not limit how many times Update may be called before the flush.
func New(k, t int) (*Decoder, error) {
	if k < 1 {
		return nil, fmt.Errorf("K=%d: %w", k, hmm.ErrInvalidDimension)
	}
	if t < 1 {
		return nil, fmt.Errorf("T=%d: %w", t, hmm.ErrInvalidDimension)
	}

	return &Decoder{
		k: k, t: t,
		columns: column.NewStore(),
		graph:   survivor.NewGraph(),
	}, nil
}

// Initialization (re)starts the decoder at a fresh window: it resets the
// column store, the survivor graph, the decoded stream, and the root, and
// seeds the t=0 column from initial. startingState is the back-state
// recorded for every entry of that seed column; since the seed column has
// no predecessor it is never read by traceback, but it participates in
// the store's bookkeeping like any other column.
//
// initial must have length k and hold only non-negative entries.
func (d *Decoder) Initialization(startingState int, initial []float64) error {
	if len(initial) != d.k {
		return fmt.Errorf("len(initial)=%d, want K=%d: %w", len(initial), d.k, hmm.ErrInvalidDimension)
	}
	for i, v := range initial {
		if v < 0 {
			return fmt.Errorf("initial[%d]=%v: %w", i, v, hmm.ErrInvalidProbability)
		}
	}

	d.columns.Clear()
	d.graph.Reset()
	d.root, d.prevRoot = nil, nil
	d.expectedT = 0
	d.decodedStream = d.decodedStream[:0]

	prob := make([]float64, d.k)
	state := make([]int, d.k)
	for j := 0; j < d.k; j++ {
		prob[j] = blog.Blog(initial[j])
		state[j] = startingState
	}
	d.columns.Append(prob, state)

	return nil
}

// Update consumes one observation at step t, advancing the forward
// recurrence by one column and the survivor graph by one generation. t
// must equal the next expected step since Initialization (0, 1, ..., T-1,
// then 0 again); any other value reports ErrOutOfOrder. a is the K x K transition
// matrix, e is the K x M emission matrix, and observation must be a valid
// index into e's columns.
//
// When the survivor paths converge onto a new root, Update performs an
// incremental traceback and appends the newly-decided prefix to the
// decoded stream, freeing the columns it consumed. Survivor-graph nodes
// that no longer lie on a surviving path are reclaimed by the graph's
// compress and reclaim passes on each step.
func (d *Decoder) Update(t, observation int, a, e [][]float64) error {
	if err := d.validateStep(t, a, e); err != nil {
		return err
	}

	m := len(e[0])
	if observation < 0 || observation >= m {
		return fmt.Errorf("observation=%d, M=%d: %w", observation, m, hmm.ErrInvalidObservation)
	}

	lastCol := d.columns.Last()
	tailBefore := d.graph.TailBeforeStep()

	prob := make([]float64, d.k)
	state := make([]int, d.k)
	for j := 0; j < d.k; j++ {
		maxVal := blog.B
		maxIndex := 0
		for i := 0; i < d.k; i++ {
			aux := blog.BlogSum(lastCol.Prob[i], blog.Blog(a[i][j]), blog.Blog(e[j][observation]))
			if aux > maxVal {
				maxVal = aux
				maxIndex = i
			}
		}
		prob[j] = maxVal
		state[j] = maxIndex

		var parent *survivor.Node
		if t != 0 {
			parent = survivor.StepBack(tailBefore, d.k-maxIndex-1)
		}
		d.graph.Append(j, t, parent)
	}

	d.columns.Append(prob, state)
	d.graph.Compress(t)
	d.graph.FreeDummyNodes(t)

	if newRoot, delta, found := d.graph.FindNewRoot(d.k, d.root); found {
		d.traceback(newRoot, delta)
	}

	d.expectedT = (d.expectedT + 1) % d.t

	return nil
}

// traceback walks the column cursor back delta steps from the tail to
// reach newRoot's column, then decodes the run from newRoot down to the
// previous root (exclusive), consuming and removing every column it
// visits along the way. The decoded run is appended to the stream in
// forward (oldest-first) order.
func (d *Decoder) traceback(newRoot *survivor.Node, delta int) {
	var depth int
	if d.root == nil {
		depth = newRoot.Time
	} else {
		depth = newRoot.Time - d.root.Time - 1
	}

	cursor := d.columns.Last()
	for i := 0; i < delta; i++ {
		cursor = cursor.Prev()
	}

	interim := make([]int, 0, depth+1)
	interim = append(interim, newRoot.State)

	output := newRoot.State
	for i := 0; i < depth; i++ {
		output = cursor.State[output]
		interim = append(interim, output)

		next := cursor.Prev()
		d.columns.Remove(cursor)
		cursor = next
	}

	for cursor != nil {
		next := cursor.Prev()
		d.columns.Remove(cursor)
		cursor = next
	}

	for l, r := 0, len(interim)-1; l < r; l, r = l+1, r-1 {
		interim[l], interim[r] = interim[r], interim[l]
	}
	d.decodedStream = append(d.decodedStream, interim...)

	d.prevRoot = d.root
	d.root = newRoot
}

// TracebackLastPart flushes whatever has not yet converged at the end of
// a window: it decodes from the current tail column back to the current
// root (or to the start of the window if no root was ever found) and
// appends the result to the decoded stream. Unlike traceback, it does not
// remove the columns or graph nodes it reads, since the caller is
// expected to call Initialization next.
func (d *Decoder) TracebackLastPart() error {
	last := d.columns.Last()
	if last == nil {
		return ErrNotInitialized
	}

	var depth int
	if d.root == nil {
		depth = d.t - 1
	} else {
		depth = d.t - 1 - d.root.Time - 1
	}

	output := argmax(last.Prob)
	interim := make([]int, 0, depth+1)
	interim = append(interim, output)

	cursor := last
	for i := 0; i < depth; i++ {
		output = cursor.State[output]
		interim = append(interim, output)
		cursor = cursor.Prev()
	}

	for l, r := 0, len(interim)-1; l < r; l, r = l+1, r-1 {
		interim[l], interim[r] = interim[r], interim[l]
	}
	d.decodedStream = append(d.decodedStream, interim...)

	return nil
}

// DecodedStream returns a copy of the state sequence decoded so far.
func (d *Decoder) DecodedStream() []int {
	out := make([]int, len(d.decodedStream))
	copy(out, d.decodedStream)

	return out
}

// NodeCount reports the number of live survivor-graph nodes, a proxy for
// the decoder's current memory footprint.
func (d *Decoder) NodeCount() int { return d.graph.Len() }

func (d *Decoder) validateStep(t int, a, e [][]float64) error {
	if t != d.expectedT {
		return fmt.Errorf("got t=%d, want %d: %w", t, d.expectedT, ErrOutOfOrder)
	}
	if len(a) != d.k {
		return fmt.Errorf("len(A)=%d, want K=%d: %w", len(a), d.k, hmm.ErrInvalidDimension)
	}
	for i, row := range a {
		if len(row) != d.k {
			return fmt.Errorf("len(A[%d])=%d, want K=%d: %w", i, len(row), d.k, hmm.ErrInvalidDimension)
		}
	}
	if len(e) != d.k {
		return fmt.Errorf("len(E)=%d, want K=%d: %w", len(e), d.k, hmm.ErrInvalidDimension)
	}
	if len(e) == 0 || len(e[0]) == 0 {
		return fmt.Errorf("E has no observation columns: %w", hmm.ErrInvalidDimension)
	}

	return nil
}

// argmax returns the index of the largest value in v, the first such
// index on ties.
func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}

	return best
}
