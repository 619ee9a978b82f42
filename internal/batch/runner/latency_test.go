package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestComputeLatencyStats(t *testing.T) {
	tests := []struct {
		name    string
		samples []time.Duration
		min     time.Duration
		max     time.Duration
		mean    time.Duration
		median  time.Duration
	}{
		{"single", []time.Duration{ms(10)}, ms(10), ms(10), ms(10), ms(10)},
		{"odd count", []time.Duration{ms(10), ms(20), ms(30), ms(40), ms(50)}, ms(10), ms(50), ms(30), ms(30)},
		{"even count", []time.Duration{ms(10), ms(20), ms(30), ms(40)}, ms(10), ms(40), ms(25), ms(25)},
		{"unsorted", []time.Duration{ms(50), ms(10), ms(30), ms(20), ms(40)}, ms(10), ms(50), ms(30), ms(30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeLatencyStats(tt.samples)
			assert.Equal(t, tt.min, s.Min)
			assert.Equal(t, tt.max, s.Max)
			assert.Equal(t, tt.mean, s.Mean)
			assert.Equal(t, tt.median, s.Median)
			assert.Equal(t, len(tt.samples), s.SampleCount)
			assert.False(t, s.IsZero())
		})
	}
}

func TestComputeLatencyStats_Empty(t *testing.T) {
	s := ComputeLatencyStats(nil)
	assert.True(t, s.IsZero())
	assert.Zero(t, s.Mean)
	assert.Zero(t, s.P99())
}

func TestComputeLatencyStats_Percentiles(t *testing.T) {
	samples := make([]time.Duration, 100)
	for i := range samples {
		samples[i] = ms(i + 1)
	}
	s := ComputeLatencyStats(samples)

	assert.InDelta(t, float64(ms(50)), float64(s.P50()), float64(ms(1)))
	assert.InDelta(t, float64(ms(90)), float64(s.P90()), float64(ms(1)))
	assert.InDelta(t, float64(ms(99)), float64(s.P99()), float64(ms(1)))
}

func TestComputeLatencyStats_Stddev(t *testing.T) {
	assert.Zero(t, ComputeLatencyStats([]time.Duration{ms(5), ms(5), ms(5)}).Stddev)
	assert.Equal(t, ms(10), ComputeLatencyStats([]time.Duration{ms(10), ms(20), ms(30)}).Stddev)
}

func TestMergeLatencyStats(t *testing.T) {
	a := ComputeLatencyStats([]time.Duration{ms(10), ms(20)})
	b := ComputeLatencyStats([]time.Duration{ms(30), ms(40)})

	m := MergeLatencyStats(a, b)
	assert.Equal(t, ms(10), m.Min)
	assert.Equal(t, ms(40), m.Max)
	assert.Equal(t, ms(25), m.Mean)
	assert.Equal(t, 4, m.SampleCount)

	assert.True(t, MergeLatencyStats().IsZero())
}

func TestPercentile_Edges(t *testing.T) {
	assert.Zero(t, percentile(nil, 50))
	assert.Equal(t, ms(7), percentile([]time.Duration{ms(7)}, 99))
	assert.Equal(t, ms(2), percentile([]time.Duration{ms(1), ms(2)}, 100))
}
