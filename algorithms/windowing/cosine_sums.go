package windowing

import "math"

// Cosine-sum family: weights are a short Fourier series in the normalized
// sample position. Symmetric form, denominator N-1, endpoints determined by
// the coefficient sums.

func generateCosineSum(coefficients []float64, a []float64) {
	N := len(coefficients)
	denominator := float64(N - 1)

	for i := 0; i < N; i++ {
		arg := 2 * math.Pi * float64(i) / denominator
		w := 0.0
		sign := 1.0
		for k, ak := range a {
			w += sign * ak * math.Cos(float64(k)*arg)
			sign = -sign
		}
		coefficients[i] = w
	}
}

// generateHann generates Hann window coefficients
func generateHann(coefficients []float64) {
	N := len(coefficients)
	denominator := float64(N - 1)

	for i := 0; i < N; i++ {
		coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
}

// generateHamming generates Hamming window coefficients
func generateHamming(coefficients []float64) {
	N := len(coefficients)
	denominator := float64(N - 1)

	for i := 0; i < N; i++ {
		coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/denominator)
	}
}

// generateBlackman generates Blackman window coefficients
func generateBlackman(coefficients []float64) {
	generateCosineSum(coefficients, []float64{0.42, 0.5, 0.08})
}

// generateBlackmanHarris generates 4-term Blackman-Harris window coefficients
func generateBlackmanHarris(coefficients []float64) {
	generateCosineSum(coefficients, []float64{0.35875, 0.48829, 0.14128, 0.01168})
}

// generateNuttall generates Nuttall window coefficients (minimum 4-term
// Blackman-Harris per Nuttall)
func generateNuttall(coefficients []float64) {
	generateCosineSum(coefficients, []float64{0.3635819, 0.4891775, 0.1365995, 0.0106411})
}

// generateBarthann generates modified Bartlett-Hann window coefficients,
// a sum of a triangular ramp and a single cosine term
func generateBarthann(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		fac := float64(i)/float64(N-1) - 0.5
		coefficients[i] = 0.62 - 0.48*math.Abs(fac) + 0.38*math.Cos(2*math.Pi*fac)
	}
}
