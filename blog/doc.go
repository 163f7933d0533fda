// Package blog provides bounded logarithm and bounded log-sum primitives
// used throughout the online and reference Viterbi decoders.
//
// 🚀 Why bounded log arithmetic?
//
//	Viterbi scores are products of many probabilities in [0,1]. Working in
//	log space turns those products into sums, which is both numerically
//	stable and fast. The one wrinkle is log(0) = -Inf: plain IEEE-754
//	arithmetic on -Inf is well-defined, but we want a *sticky*, clamp-able
//	sentinel instead so that tests can assert equality against a known
//	floor rather than chase NaN/Inf propagation rules.
//
// ✨ Key properties:
//   - Blog(0) always returns B, never -Inf.
//   - BlogSum clamps any result below B back up to B.
//   - Both are pure functions: no allocation, no shared state.
//
// See blog_test.go for the property-based tests that pin these guarantees.
package blog
