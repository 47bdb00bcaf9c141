package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgoerner/micromet/algorithms/common"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty window set", func(c *Config) { c.WindowsMin = nil }},
		{"non-positive window", func(c *Config) { c.WindowsMin = []int{10, 0} }},
		{"non-positive reference", func(c *Config) { c.ReferenceWindowMin = 0 }},
		{"taper fraction too large", func(c *Config) { c.TaperFraction = 0.6 }},
		{"negative taper fraction", func(c *Config) { c.TaperFraction = -0.1 }},
		{"zero smoothing kernel", func(c *Config) { c.SmoothingKernel = 0 }},
		{"single comparison bin", func(c *Config) { c.ComparisonBins = 1 }},
		{"zero turbulence interval", func(c *Config) { c.TurbulenceInterval = 0 }},
		{"non-positive sample rate", func(c *Config) { c.SampleRates[DeviceEXPE] = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), common.ErrInvalidParameter)
		})
	}
}

func TestWindowSamples(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		device  Device
		minutes int
		samples int
	}{
		{DeviceEXPE, 10, 600},
		{DeviceSONIC, 10, 1200},
		{DeviceEXPE, 1, 60},
		{DeviceSONIC, 60, 7200},
	}

	for _, tt := range tests {
		samples, err := cfg.WindowSamples(tt.device, tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.samples, samples, "%s %d min", tt.device, tt.minutes)
	}
}

func TestWindowSamplesErrors(t *testing.T) {
	cfg := DefaultConfig()

	_, err := cfg.WindowSamples(DeviceEXPE, 0)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	_, err = cfg.WindowSamples(Device("LIDAR"), 10)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	slow := DefaultConfig()
	slow.SampleRates[DeviceEXPE] = 0.001
	_, err = slow.WindowSamples(DeviceEXPE, 1)
	assert.ErrorIs(t, err, common.ErrDimensionMismatch)
}

func TestSampleRate(t *testing.T) {
	cfg := DefaultConfig()

	rate, err := cfg.SampleRate(DeviceSONIC)
	require.NoError(t, err)
	assert.Equal(t, 2.0, rate)

	cfg.TurbulenceInterval = 5 * time.Minute
	assert.NoError(t, cfg.Validate())
}
