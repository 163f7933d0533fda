// Package hmm defines the Hidden Markov Model parameters shared by the
// online and reference Viterbi decoders, along with the sentinel errors
// and validation used to reject malformed inputs at the boundary.
//
// Params is intentionally a thin, immutable-per-run value: K states, an
// M-symbol observation alphabet, transition matrix A, emission matrix E,
// and initial distribution Pi. Neither A's rows nor E's rows are
// required to sum to 1 — zero entries are common and expected (they
// simply route through the blog floor).
package hmm
