package windowing

import "math"

// Remaining catalog members: flat, sinusoidal and parameterized shapes with
// their catalog-fixed parameters.

// generateBoxcar generates rectangular window coefficients
func generateBoxcar(coefficients []float64) {
	for i := range coefficients {
		coefficients[i] = 1.0
	}
}

// generateCosine generates cosine (half-sine) window coefficients
func generateCosine(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		coefficients[i] = math.Sin(math.Pi * (float64(i) + 0.5) / float64(N))
	}
}

// generateBohman generates Bohman window coefficients, the convolution of
// two half-duration cosine lobes
func generateBohman(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		x := 2.0*float64(i)/float64(N-1) - 1.0
		if x < 0 {
			x = -x
		}
		coefficients[i] = (1.0-x)*math.Cos(math.Pi*x) + math.Sin(math.Pi*x)/math.Pi
	}
}

// generateLanczos generates Lanczos (sinc) window coefficients
func generateLanczos(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		coefficients[i] = sinc(2.0*float64(i)/float64(N-1) - 1.0)
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1.0
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// generateKaiser generates Kaiser window coefficients for the given beta
func generateKaiser(coefficients []float64, beta float64) {
	N := len(coefficients)
	denominator := float64(N - 1)

	// Calculate I0(beta) for normalization
	i0Beta := besselI0(beta)

	for i := 0; i < N; i++ {
		arg := 2.0*float64(i)/denominator - 1.0
		coefficients[i] = besselI0(beta*math.Sqrt(1-arg*arg)) / i0Beta
	}
}

// generateTukey generates Tukey window coefficients: rectangular in the
// middle with cosine tapers covering an alpha fraction of the support
func generateTukey(coefficients []float64, alpha float64) {
	N := len(coefficients)
	width := int(math.Floor(alpha * float64(N-1) / 2.0))

	for i := 0; i < N; i++ {
		switch {
		case i <= width:
			coefficients[i] = 0.5 * (1 + math.Cos(math.Pi*(-1+2.0*float64(i)/(alpha*float64(N-1)))))
		case i >= N-1-width:
			coefficients[i] = 0.5 * (1 + math.Cos(math.Pi*(-2.0/alpha+1+2.0*float64(i)/(alpha*float64(N-1)))))
		default:
			coefficients[i] = 1.0
		}
	}
}

// besselI0 computes the zero-order modified Bessel function of the first kind
func besselI0(x float64) float64 {
	// Series expansion approximation
	sum := 1.0
	term := 1.0

	for k := 1; k < 50; k++ {
		term *= (x / (2.0 * float64(k))) * (x / (2.0 * float64(k)))
		sum += term

		// Check for convergence
		if term < 1e-12 {
			break
		}
	}

	return sum
}
