// Command oviterbi runs and benchmarks the online Viterbi decoder
// against a config file describing an HMM and a window size.
package main

import "os"

func main() {
	os.Exit(Execute())
}
