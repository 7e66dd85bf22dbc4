package synth

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/common"
)

func NewTone() Tone {
	return Tone{
		DefaultFrequency,
		DefaultRamp,
		DefaultAmplitude,
		DefaultSampleRate,
	}
}

// Tone holds everything which is required to render a keyed element beside
// its duration.
type Tone struct {
	Frequency float64 `yaml:"frequency,omitempty"`
	Ramp      float64 `yaml:"ramp,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"`

	SampleRate int `yaml:"-"`
}

func (this Tone) Render(durationMs float64) []byte {
	return Render(durationMs, this.Ramp, this.Frequency, this.Amplitude, this.SampleRate)
}

func (this Tone) Validate() error {
	if this.SampleRate <= 0 {
		return fmt.Errorf("illegal-sample-rate: %d", this.SampleRate)
	}
	if this.Frequency <= 0 || this.Frequency >= float64(this.SampleRate)/2 {
		return fmt.Errorf("illegal-tone-frequency: %g Hz is not between 0 and %d Hz", this.Frequency, this.SampleRate/2)
	}
	if this.Ramp <= 0 {
		return fmt.Errorf("illegal-tone-ramp: %g ms", this.Ramp)
	}
	if this.Amplitude < 0 || this.Amplitude > 127 {
		return fmt.Errorf("illegal-tone-amplitude: %g is not between 0 and 127", this.Amplitude)
	}
	return nil
}

func (this *Tone) SetupConfiguration(using common.FlagHolder) {
	using.Flag("tone.frequency", "Frequency of the side tone in Hz.").
		Envar("CWK_TONE_FREQUENCY").
		Float64Var(&this.Frequency)
	using.Flag("tone.ramp", "Duration in milliseconds of the rising and falling edge of every element. Should be at least 6ms to prevent key clicks.").
		Envar("CWK_TONE_RAMP").
		Float64Var(&this.Ramp)
	using.Flag("tone.amplitude", "Amplitude of the side tone. 0 is silent, 127 is the maximum.").
		Envar("CWK_TONE_AMPLITUDE").
		Float64Var(&this.Amplitude)
}
