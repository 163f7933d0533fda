package main

import "math/rand"

// syntheticObservations generates a length-window observation sequence
// over an M-symbol alphabet using a random walk: each symbol nudges off
// the previous one, rather than being drawn independently, so consecutive
// windows exercise the decoder's transition structure instead of pure
// noise.
func syntheticObservations(window, m int, rng *rand.Rand) []int {
	obs := make([]int, window)
	previous := 0
	for i := range obs {
		step := int(2 * rng.Float64())
		previous = (previous + step) % m
		obs[i] = previous
	}

	return obs
}
