package synth

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestRender_length(t *testing.T) {
	cases := []struct {
		name       string
		durationMs float64
		expected   int
	}{
		{"dit@24wpm", 50, 2976 + 576},
		{"dah@24wpm", 150, 7776 + 576},
		{"dit@6wpm", 200, 10176 + 576},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := Render(c.durationMs, DefaultRamp, DefaultFrequency, DefaultAmplitude, DefaultSampleRate)
			assert.Len(t, actual, c.expected)
		})
	}
}

func TestRender_startsWithSilence(t *testing.T) {
	actual := Render(50, DefaultRamp, DefaultFrequency, DefaultAmplitude, DefaultSampleRate)

	require.NotEmpty(t, actual)
	assert.Equal(t, Silence, actual[0])
}

func TestRender_amplitude(t *testing.T) {
	actual := Render(150, DefaultRamp, DefaultFrequency, 127, DefaultSampleRate)

	minimum, maximum := byte(255), byte(0)
	for _, v := range actual {
		minimum = min(minimum, v)
		maximum = max(maximum, v)
	}

	assert.GreaterOrEqual(t, minimum, byte(1))
	assert.LessOrEqual(t, maximum, byte(255))
	assert.Greater(t, maximum, byte(250))
	assert.Less(t, minimum, byte(6))
}

func TestRender_phaseIsContinuous(t *testing.T) {
	const rate = float64(DefaultSampleRate)
	actual := Render(50, DefaultRamp, DefaultFrequency, DefaultAmplitude, DefaultSampleRate)

	expected := func(i int) byte {
		return byte(math.Round(128 + DefaultAmplitude*math.Sin(2*math.Pi*DefaultFrequency*float64(i)/rate)))
	}

	// First and last sample of the sustain segment.
	assert.Equal(t, expected(576), actual[576])
	assert.Equal(t, expected(2975), actual[2975])
	// Beginning of the falling ramp has still full envelope.
	assert.Equal(t, expected(2976), actual[2976])
}

func TestRender_fadesOut(t *testing.T) {
	actual := Render(50, DefaultRamp, DefaultFrequency, DefaultAmplitude, DefaultSampleRate)

	for _, v := range actual[len(actual)-10:] {
		assert.InDelta(t, 128, int(v), 1)
	}
	for _, v := range actual[:10] {
		assert.InDelta(t, 128, int(v), 1)
	}
}

func TestRender_silentWithoutAmplitude(t *testing.T) {
	actual := Render(50, DefaultRamp, DefaultFrequency, 0, DefaultSampleRate)

	for _, v := range actual {
		assert.Equal(t, Silence, v)
	}
}
