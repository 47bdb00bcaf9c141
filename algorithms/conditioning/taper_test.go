package conditioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/algorithms/windowing"
)

func TestTaperHannEdges(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	// fraction 0.25 of 8 samples tapers 2 on each end with a Hann window of
	// support 4: weights 0, 0.75, 0.75, 0.
	tapered, err := Taper(values, 0.25, windowing.Hann)
	require.NoError(t, err)

	expected := []float64{0, 0.75, 1, 1, 1, 1, 0.75, 0}
	require.Len(t, tapered, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], tapered[i], 1e-12, "index %d", i)
	}
}

func TestTaperBoxcarIsIdentity(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	tapered, err := Taper(values, 0.25, windowing.Boxcar)
	require.NoError(t, err)
	assert.Equal(t, values, tapered)
}

func TestTaperZeroEdgeReturnsCopy(t *testing.T) {
	values := []float64{2, 4, 6}

	tapered, err := Taper(values, 0.1, windowing.Hann)
	require.NoError(t, err)
	assert.Equal(t, values, tapered)

	tapered[0] = -1
	assert.Equal(t, 2.0, values[0], "taper must not alias the input")
}

func TestTaperDoesNotMutateInput(t *testing.T) {
	values := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	original := append([]float64(nil), values...)

	_, err := TaperDefault(values, 0.25)
	require.NoError(t, err)
	assert.Equal(t, original, values)
}

func TestTaperErrors(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
	}{
		{"negative fraction", -0.1},
		{"fraction above half", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Taper([]float64{1, 2, 3}, tt.fraction, windowing.Hann)
			assert.ErrorIs(t, err, common.ErrInvalidParameter)
		})
	}
}
