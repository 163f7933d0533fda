package hmm

import (
	"errors"
	"fmt"
)

// Sentinel errors for HMM parameter validation. Library code adds
// context only through fmt.Errorf's %w, so callers can compare with
// errors.Is; the driver side (internal/config, cmd/oviterbi) wraps them
// further with github.com/pkg/errors for display.
var (
	// ErrInvalidDimension indicates K < 1, T < 1, or a matrix/vector
	// shape that does not match K or M.
	ErrInvalidDimension = errors.New("hmm: invalid dimension")

	// ErrInvalidObservation indicates an observation index outside [0, M).
	ErrInvalidObservation = errors.New("hmm: invalid observation")

	// ErrInvalidProbability indicates a negative entry in A, E, or Pi.
	ErrInvalidProbability = errors.New("hmm: invalid probability")
)

// Params holds the Hidden Markov Model parameters for a single run: the
// number of hidden states K, the observation alphabet size M, the
// transition matrix A (K x K), the emission matrix E (K x M), the
// initial distribution Pi (length K), and the nominal window length T
// used by the reference decoder and the online decoder's terminal
// flush.
type Params struct {
	K, M, T int
	A       [][]float64
	E       [][]float64
	Pi      []float64
}

// Validate checks that Params holds internally-consistent dimensions
// and non-negative probabilities. It does not require rows of A or E to
// sum to 1.
//
// Complexity: O(K*M + K^2).
func (p *Params) Validate() error {
	if p.K < 1 {
		return fmt.Errorf("K=%d: %w", p.K, ErrInvalidDimension)
	}
	if p.T < 1 {
		return fmt.Errorf("T=%d: %w", p.T, ErrInvalidDimension)
	}
	if p.M < 1 {
		return fmt.Errorf("M=%d: %w", p.M, ErrInvalidDimension)
	}
	if len(p.Pi) != p.K {
		return fmt.Errorf("len(Pi)=%d, want K=%d: %w", len(p.Pi), p.K, ErrInvalidDimension)
	}
	if len(p.A) != p.K {
		return fmt.Errorf("len(A)=%d, want K=%d: %w", len(p.A), p.K, ErrInvalidDimension)
	}
	if len(p.E) != p.K {
		return fmt.Errorf("len(E)=%d, want K=%d: %w", len(p.E), p.K, ErrInvalidDimension)
	}

	for i, row := range p.A {
		if len(row) != p.K {
			return fmt.Errorf("len(A[%d])=%d, want K=%d: %w", i, len(row), p.K, ErrInvalidDimension)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("A[%d][%d]=%v: %w", i, j, v, ErrInvalidProbability)
			}
		}
	}

	for i, row := range p.E {
		if len(row) != p.M {
			return fmt.Errorf("len(E[%d])=%d, want M=%d: %w", i, len(row), p.M, ErrInvalidDimension)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("E[%d][%d]=%v: %w", i, j, v, ErrInvalidProbability)
			}
		}
	}

	for i, v := range p.Pi {
		if v < 0 {
			return fmt.Errorf("Pi[%d]=%v: %w", i, v, ErrInvalidProbability)
		}
	}

	return nil
}

// ValidateObservation reports ErrInvalidObservation if obs is outside
// [0, M).
func (p *Params) ValidateObservation(obs int) error {
	if obs < 0 || obs >= p.M {
		return fmt.Errorf("observation=%d, M=%d: %w", obs, p.M, ErrInvalidObservation)
	}

	return nil
}
