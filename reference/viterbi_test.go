package reference_test

import (
	"testing"

	"github.com/mlanger/oviterbi/reference"
	"github.com/stretchr/testify/assert"
)

// TestViterbi_DeterministicIdentity covers scenario S1: an identity
// transition matrix and a perfectly discriminating emission matrix must
// decode to the observation-implied state at every step.
func TestViterbi_DeterministicIdentity(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	e := [][]float64{{1, 0}, {0, 1}}
	pi := []float64{1, 0}
	obs := []int{0, 0, 0}

	d := reference.New(2, 3)
	d.Viterbi(obs, pi, a, e)

	assert.Equal(t, []int{0, 0, 0}, d.OptimalPath())
}

// TestViterbi_ForcedTransition covers scenario S2.
func TestViterbi_ForcedTransition(t *testing.T) {
	a := [][]float64{{0, 1}, {1, 0}}
	e := [][]float64{{1, 0}, {0, 1}}
	pi := []float64{1, 0}
	obs := []int{0, 1, 0}

	d := reference.New(2, 3)
	d.Viterbi(obs, pi, a, e)

	assert.Equal(t, []int{0, 1, 0}, d.OptimalPath())
}

// TestViterbi_SingleState covers K=1: the path must be all zeros
// regardless of observations.
func TestViterbi_SingleState(t *testing.T) {
	a := [][]float64{{1}}
	e := [][]float64{{0.5, 0.5}}
	pi := []float64{1}
	obs := []int{0, 1, 1, 0}

	d := reference.New(1, 4)
	d.Viterbi(obs, pi, a, e)

	assert.Equal(t, []int{0, 0, 0, 0}, d.OptimalPath())
}

// TestViterbi_SingleStep covers T=1.
func TestViterbi_SingleStep(t *testing.T) {
	a := [][]float64{{0.5, 0.5}, {0.5, 0.5}}
	e := [][]float64{{0.9, 0.1}, {0.1, 0.9}}
	pi := []float64{0.5, 0.5}
	obs := []int{0}

	d := reference.New(2, 1)
	d.Viterbi(obs, pi, a, e)

	assert.Len(t, d.OptimalPath(), 1)
	assert.Equal(t, 0, d.OptimalPath()[0], "obs=0 favors state 0 under this emission matrix")
}
