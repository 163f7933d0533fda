package reference

import "github.com/mlanger/oviterbi/blog"

// Decoder runs the standard three-phase Viterbi algorithm over a fixed
// K x T window: initialization, forward recursion, and termination with
// back-pointer traceback.
type Decoder struct {
	k, t int

	scores [][]float64
	path   [][]int

	optimalPath []int
}

// New returns a Decoder sized for K hidden states and a T-step window.
func New(k, t int) *Decoder {
	scores := make([][]float64, k)
	path := make([][]int, k)
	for i := range scores {
		scores[i] = make([]float64, t)
		path[i] = make([]int, t)
	}

	return &Decoder{
		k: k, t: t,
		scores:      scores,
		path:        path,
		optimalPath: make([]int, t),
	}
}

// OptimalPath returns the decoded state sequence from the most recent
// call to Viterbi.
func (d *Decoder) OptimalPath() []int { return d.optimalPath }

// Viterbi computes the most likely state sequence for observations
// (length T) given the initial distribution and transition/emission
// matrices. The result is available via OptimalPath.
//
// Ties in the argmax are broken by the lowest-index predecessor (strict
// '>' comparison), matching the online decoder's tie-break exactly so
// the two decoders agree on ambiguous inputs.
func (d *Decoder) Viterbi(observations []int, initial []float64, a, e [][]float64) {
	d.initialization(observations, initial, a, e)
	d.recursion(observations, a, e)
	d.termination()
}

func (d *Decoder) initialization(observations []int, initial []float64, a, e [][]float64) {
	for j := 0; j < d.k; j++ {
		maxVal := blog.B
		maxIndex := 0
		for i := 0; i < d.k; i++ {
			aux := blog.BlogSum(blog.Blog(initial[i]), blog.Blog(a[i][j]), blog.Blog(e[j][observations[0]]))
			if aux > maxVal {
				maxVal = aux
				maxIndex = i
			}
		}
		d.scores[j][0] = maxVal
		d.path[j][0] = maxIndex
	}
}

func (d *Decoder) recursion(observations []int, a, e [][]float64) {
	for t := 1; t < d.t; t++ {
		for j := 0; j < d.k; j++ {
			maxVal := blog.B
			maxIndex := 0
			for i := 0; i < d.k; i++ {
				aux := blog.BlogSum(d.scores[i][t-1], blog.Blog(a[i][j]), blog.Blog(e[j][observations[t]]))
				if aux > maxVal {
					maxVal = aux
					maxIndex = i
				}
			}
			d.scores[j][t] = maxVal
			d.path[j][t] = maxIndex
		}
	}
}

func (d *Decoder) termination() {
	maxVal := blog.B
	maxIndex := 0
	for j := 0; j < d.k; j++ {
		if d.scores[j][d.t-1] > maxVal {
			maxVal = d.scores[j][d.t-1]
			maxIndex = j
		}
	}
	d.optimalPath[d.t-1] = maxIndex
	for t := d.t - 2; t >= 0; t-- {
		d.optimalPath[t] = d.path[d.optimalPath[t+1]][t+1]
	}
}
