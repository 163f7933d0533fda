// Package reference implements the standard offline Viterbi algorithm
// over a fixed-length window, used solely as a test oracle for the
// online decoder in package oviterbi. It stores the full K x T score
// and back-pointer matrices, which is exactly the O(K*T) memory the
// online decoder exists to avoid.
package reference
