package synth

import "math"

const (
	// Silence is the value of an unsigned 8-bit sample without any
	// excursion.
	Silence = uint8(128)

	DefaultSampleRate = 48000
	DefaultFrequency  = 850.0
	DefaultRamp       = 12.0
	DefaultAmplitude  = 100.0
)

// Render renders a tone of durationMs with a raised cosine ramp of rampMs at
// its start and its end. The result is unsigned 8-bit mono PCM centered at
// Silence.
//
// The ramp time is counted once inside the body and the falling ramp is
// appended afterwards, so the buffer is rampMs longer than durationMs+rampMs
// and the full amplitude part is one ramp shorter than durationMs.
func Render(durationMs, rampMs, frequency, amplitude float64, sampleRate int) []byte {
	rate := float64(sampleRate)
	rampLen := int(math.Round(rampMs / 1000 * rate))
	bodyEnd := int(math.Round((durationMs + rampMs) / 1000 * rate))
	if bodyEnd < rampLen {
		bodyEnd = rampLen
	}

	sample := func(i int, envelope float64) byte {
		phase := 2 * math.Pi * frequency * float64(i) / rate
		return clamp(math.Round(float64(Silence) + amplitude*envelope*math.Sin(phase)))
	}

	result := make([]byte, 0, bodyEnd+rampLen)
	for i := 0; i < rampLen; i++ {
		result = append(result, sample(i, 0.5*(1-math.Cos(math.Pi*float64(i)/float64(rampLen)))))
	}
	for i := rampLen; i < bodyEnd; i++ {
		result = append(result, sample(i, 1))
	}
	for j := 0; j < rampLen; j++ {
		result = append(result, sample(bodyEnd+j, 0.5*(1+math.Cos(math.Pi*float64(j)/float64(rampLen)))))
	}
	return result
}

func clamp(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
