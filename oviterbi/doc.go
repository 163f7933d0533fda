// Package oviterbi implements the online Viterbi decoder: a streaming,
// bounded-latency, bounded-memory alternative to the standard O(K*T)
// Viterbi algorithm.
//
// 🚀 How it stays bounded
//
//	Each Update call computes one new column of the forward recurrence
//	in log space (package blog), appends K survivor-graph nodes for the
//	new time step (package survivor), compresses and reclaims the graph,
//	and checks whether the survivor paths have converged onto a common
//	ancestor (the "root"). When they have, the decoded prefix up to that
//	root is traced back, appended to the decoded stream, and the
//	consumed columns are freed — so memory tracks the current
//	convergence lag, not the full stream length.
//
// ✨ Usage
//
//	d, err := oviterbi.New(k, t)
//	err = d.Initialization(startingState, initial)
//	for t, obs := range observations {
//	    err = d.Update(t, obs, A, E)
//	}
//	err = d.TracebackLastPart()
//	decoded := d.DecodedStream()
//
// Decoder is not safe for concurrent use by multiple goroutines;
// independent Decoder instances share no state and may run in parallel
// on disjoint streams.
package oviterbi
