package oviterbi_test

import (
	"testing"

	"github.com/mlanger/oviterbi/hmm"
	"github.com/mlanger/oviterbi/oviterbi"
	"github.com/mlanger/oviterbi/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsBadDimensions covers K<1 and T<1.
func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := oviterbi.New(0, 3)
	assert.ErrorIs(t, err, hmm.ErrInvalidDimension)

	_, err = oviterbi.New(2, 0)
	assert.ErrorIs(t, err, hmm.ErrInvalidDimension)
}

// TestInitialization_RejectsBadInput covers a mis-sized and a negative
// initial distribution.
func TestInitialization_RejectsBadInput(t *testing.T) {
	d, err := oviterbi.New(2, 4)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Initialization(0, []float64{1}), hmm.ErrInvalidDimension)
	assert.ErrorIs(t, d.Initialization(0, []float64{1, -1}), hmm.ErrInvalidProbability)
}

// TestUpdate_RejectsOutOfOrder verifies the expected-t check.
func TestUpdate_RejectsOutOfOrder(t *testing.T) {
	d, err := oviterbi.New(2, 4)
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, []float64{1, 0}))

	a := [][]float64{{1, 0}, {0, 1}}
	e := [][]float64{{1, 0}, {0, 1}}

	assert.ErrorIs(t, d.Update(1, 0, a, e), oviterbi.ErrOutOfOrder)
}

// TestUpdate_RejectsBadObservation verifies observation-range checking.
func TestUpdate_RejectsBadObservation(t *testing.T) {
	d, err := oviterbi.New(2, 4)
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, []float64{1, 0}))

	a := [][]float64{{1, 0}, {0, 1}}
	e := [][]float64{{1, 0}, {0, 1}}

	assert.ErrorIs(t, d.Update(0, 2, a, e), hmm.ErrInvalidObservation)
	assert.ErrorIs(t, d.Update(0, -1, a, e), hmm.ErrInvalidObservation)
}

// TestUpdate_RejectsMismatchedMatrices covers shape mismatches in A/E.
func TestUpdate_RejectsMismatchedMatrices(t *testing.T) {
	d, err := oviterbi.New(2, 4)
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, []float64{1, 0}))

	badA := [][]float64{{1, 0}}
	e := [][]float64{{1, 0}, {0, 1}}
	assert.ErrorIs(t, d.Update(0, 0, badA, e), hmm.ErrInvalidDimension)

	a := [][]float64{{1, 0}, {0, 1}}
	badE := [][]float64{{1, 0}}
	assert.ErrorIs(t, d.Update(0, 0, a, badE), hmm.ErrInvalidDimension)
}

// TestTracebackLastPart_RequiresPriorUpdate verifies the guard against
// flushing an un-initialized decoder.
func TestTracebackLastPart_RequiresPriorUpdate(t *testing.T) {
	d, err := oviterbi.New(2, 4)
	require.NoError(t, err)

	assert.ErrorIs(t, d.TracebackLastPart(), oviterbi.ErrNotInitialized)
}

// TestDecoder_DeterministicIdentity covers scenario S1 end to end,
// including the terminal flush.
func TestDecoder_DeterministicIdentity(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	e := [][]float64{{1, 0}, {0, 1}}
	pi := []float64{1, 0}
	obs := []int{0, 0, 0}

	d, err := oviterbi.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, pi))

	for step, o := range obs {
		require.NoError(t, d.Update(step, o, a, e))
	}
	require.NoError(t, d.TracebackLastPart())

	assert.Equal(t, []int{0, 0, 0}, d.DecodedStream())
}

// TestDecoder_AgreesWithReference runs both decoders over several small
// deterministic scenarios and checks their decoded state sequences match.
func TestDecoder_AgreesWithReference(t *testing.T) {
	cases := []struct {
		name string
		k    int
		a, e [][]float64
		pi   []float64
		obs  []int
	}{
		{
			name: "forced_transition",
			k:    2,
			a:    [][]float64{{0, 1}, {1, 0}},
			e:    [][]float64{{1, 0}, {0, 1}},
			pi:   []float64{1, 0},
			obs:  []int{0, 1, 0},
		},
		{
			name: "tri_state_merge",
			k:    3,
			a: [][]float64{
				{0.8, 0.1, 0.1},
				{0.1, 0.8, 0.1},
				{0.1, 0.1, 0.8},
			},
			e: [][]float64{
				{0.9, 0.05, 0.05},
				{0.05, 0.9, 0.05},
				{0.05, 0.05, 0.9},
			},
			pi:  []float64{1, 0, 0},
			obs: []int{0, 0, 1, 1, 1, 2, 0, 0, 0, 1},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			ref := reference.New(c.k, len(c.obs))
			ref.Viterbi(c.obs, c.pi, c.a, c.e)

			d, err := oviterbi.New(c.k, len(c.obs))
			require.NoError(t, err)
			require.NoError(t, d.Initialization(0, c.pi))

			for step, o := range c.obs {
				require.NoError(t, d.Update(step, o, c.a, c.e))
			}
			require.NoError(t, d.TracebackLastPart())

			assert.Equal(t, ref.OptimalPath(), d.DecodedStream())
		})
	}
}

// TestDecoder_LongStreamAgreesWithReference covers scenario S4: a long
// run composed of repeated windows, each reinitialized, checked against
// the reference decoder window by window.
func TestDecoder_LongStreamAgreesWithReference(t *testing.T) {
	k, window := 4, 10
	a := [][]float64{
		{0.7, 0.1, 0.1, 0.1},
		{0.1, 0.7, 0.1, 0.1},
		{0.1, 0.1, 0.7, 0.1},
		{0.1, 0.1, 0.1, 0.7},
	}
	e := [][]float64{
		{0.7, 0.1, 0.1, 0.1},
		{0.1, 0.7, 0.1, 0.1},
		{0.1, 0.1, 0.7, 0.1},
		{0.1, 0.1, 0.1, 0.7},
	}
	pi := []float64{1, 0, 0, 0}

	d, err := oviterbi.New(k, window)
	require.NoError(t, err)

	for w := 0; w < 20; w++ {
		obs := make([]int, window)
		for i := range obs {
			obs[i] = (w + i) % k
		}

		require.NoError(t, d.Initialization(0, pi))
		for step, o := range obs {
			require.NoError(t, d.Update(step, o, a, e))
		}
		require.NoError(t, d.TracebackLastPart())

		ref := reference.New(k, window)
		ref.Viterbi(obs, pi, a, e)

		assert.Equal(t, ref.OptimalPath(), d.DecodedStream(), "window %d", w)
	}
}

// TestDecoder_NodeCountStaysBounded covers scenario S6: over a long run
// with strong self-transitions (fast convergence), the survivor graph
// should never grow far past a small multiple of K.
func TestDecoder_NodeCountStaysBounded(t *testing.T) {
	k, window := 3, 500
	a := [][]float64{
		{0.9, 0.05, 0.05},
		{0.05, 0.9, 0.05},
		{0.05, 0.05, 0.9},
	}
	e := [][]float64{
		{0.9, 0.05, 0.05},
		{0.05, 0.9, 0.05},
		{0.05, 0.05, 0.9},
	}
	pi := []float64{1, 0, 0}

	d, err := oviterbi.New(k, window)
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, pi))

	maxNodes := 0
	for step := 0; step < window; step++ {
		obs := step % k
		require.NoError(t, d.Update(step, obs, a, e))
		if n := d.NodeCount(); n > maxNodes {
			maxNodes = n
		}
	}

	assert.LessOrEqual(t, maxNodes, 10*k, "node count should stay within a small multiple of K")
}

// TestDecoder_SingleState covers K=1: every column trivially survives.
func TestDecoder_SingleState(t *testing.T) {
	a := [][]float64{{1}}
	e := [][]float64{{0.5, 0.5}}
	pi := []float64{1}
	obs := []int{0, 1, 1, 0}

	d, err := oviterbi.New(1, len(obs))
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, pi))

	for step, o := range obs {
		require.NoError(t, d.Update(step, o, a, e))
	}
	require.NoError(t, d.TracebackLastPart())

	assert.Equal(t, []int{0, 0, 0, 0}, d.DecodedStream())
}

// TestDecoder_SingleStep covers T=1: TracebackLastPart alone must decode
// the whole (one-column) window.
func TestDecoder_SingleStep(t *testing.T) {
	a := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	e := [][]float64{{0.9, 0.1}, {0.1, 0.9}}
	pi := []float64{0.5, 0.5}

	d, err := oviterbi.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, d.Initialization(0, pi))
	require.NoError(t, d.Update(0, 0, a, e))
	require.NoError(t, d.TracebackLastPart())

	assert.Len(t, d.DecodedStream(), 1)
}
