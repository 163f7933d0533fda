// Package report writes benchmark results for comparison runs between
// the online and reference decoders: a CSV row per window (iteration,
// observations, standard_time, online_time, nodes) and a human-readable
// console summary (path agreement and timings).
//
// No third-party CSV library appears anywhere in the retrieval pack, so
// this package uses encoding/csv directly.
package report
