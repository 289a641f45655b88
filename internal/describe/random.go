package describe

import "math/rand"

// irwinHallTerms is the fixed number of uniform draws summed per output
// position by NormalDistribution.
const irwinHallTerms = 45

// UniformDistribution draws n independent values uniformly distributed in
// [min, max) from rng. The caller owns the returned slice. rng must not be
// shared with concurrent callers without external serialization.
func UniformDistribution(rng *rand.Rand, n int, min, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (max-min)*rng.Float64() + min
	}
	return out
}

// NormalDistribution approximates a normal sample of length n by summing 45
// uniform draws over [-1, 1) per position (Irwin-Hall), then scaling each
// sum by std and shifting by mean. Draws are consumed term-major: all n
// draws of one term before the next term, so output is deterministic for a
// seeded rng.
//
// The sum is not variance-normalized before std is applied, so the
// effective standard deviation of the output is std*sqrt(15), not std.
// Earlier releases behaved this way and consumers depend on the scale.
func NormalDistribution(rng *rand.Rand, n int, mean, std float64) []float64 {
	sums := make([]float64, n)
	for t := 0; t < irwinHallTerms; t++ {
		for i, u := range UniformDistribution(rng, n, -1, 1) {
			sums[i] += u
		}
	}
	for i := range sums {
		sums[i] = sums[i]*std + mean
	}
	return sums
}
