package windowing

// Triangular and polynomial windows.

// generateBartlett generates Bartlett (triangular) window coefficients with
// zero-valued endpoints
func generateBartlett(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		arg := 2.0*float64(i)/float64(N-1) - 1.0
		if arg < 0 {
			arg = -arg
		}
		coefficients[i] = 1.0 - arg
	}
}

// generateTriang generates triangular window coefficients with non-zero
// endpoints
func generateTriang(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		k := min(i, N-1-i)
		if N%2 == 1 {
			coefficients[i] = 2.0 * float64(k+1) / float64(N+1)
		} else {
			coefficients[i] = (2.0*float64(k) + 1.0) / float64(N)
		}
	}
}

// generateParzen generates Parzen window coefficients, a piecewise cubic
// approximation of the Gaussian
func generateParzen(coefficients []float64) {
	N := len(coefficients)
	half := float64(N) / 2.0

	for i := 0; i < N; i++ {
		x := float64(i) - float64(N-1)/2.0
		if x < 0 {
			x = -x
		}
		na := x / half
		if na <= 0.5 {
			coefficients[i] = 1.0 - 6.0*na*na + 6.0*na*na*na
		} else {
			d := 1.0 - na
			coefficients[i] = 2.0 * d * d * d
		}
	}
}

// generateWelch generates Welch (parabolic) window coefficients
func generateWelch(coefficients []float64) {
	N := len(coefficients)

	for i := 0; i < N; i++ {
		arg := (float64(i) - float64(N-1)/2.0) / (float64(N-1) / 2.0)
		coefficients[i] = 1.0 - arg*arg
	}
}
