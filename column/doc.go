// Package column implements the time-indexed column store that backs the
// online Viterbi decoder's forward recurrence.
//
// Each column pairs a length-K probability vector with a length-K
// back-state vector for a single time step. Columns are appended at the
// tail as the decoder consumes observations, and dropped from either end
// as the survivor graph's traceback and convergence logic frees prefixes
// that have already been emitted.
//
// The store is an intrusive doubly-linked list (mirroring the
// dllist/pyllist the algorithm was originally written against) so that a
// cursor obtained from one call (e.g. the current tail) can be walked
// backward and have elements removed in O(1), without re-scanning the
// list from an end on every step.
package column
