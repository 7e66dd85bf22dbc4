package app

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/audio"
	"github.com/blaubaer/cw-keyer/pkg/common"
	"github.com/blaubaer/cw-keyer/pkg/input/facade"
	"github.com/blaubaer/cw-keyer/pkg/keyer"
	"github.com/blaubaer/cw-keyer/pkg/synth"
	"time"
)

func NewConfiguration() Configuration {
	return Configuration{
		keyer.DefaultWpm,
		time.Second,

		synth.NewTone(),
		audio.NewConfiguration(),
		facade.NewConfiguration(),
	}
}

type Configuration struct {
	Wpm           int           `yaml:"wpm"`
	CheckInterval time.Duration `yaml:"checkInterval,omitempty"`

	Tone  synth.Tone           `yaml:"tone,omitempty"`
	Audio audio.Configuration  `yaml:"audio,omitempty"`
	Input facade.Configuration `yaml:"input,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("wpm", fmt.Sprintf("Speed in words per minute to start with (%d-%d, lower if tone.ramp is longer than %gms).", keyer.MinimumWpm, keyer.MaximumWpm, 1200/(2*float64(keyer.MaximumWpm)))).
		Short('w').
		Envar("CWK_WPM").
		IntVar(&this.Wpm)
	using.Flag("checkInterval", "How often the audio output is checked for failures.").
		Envar("CWK_CHECK_INTERVAL").
		DurationVar(&this.CheckInterval)

	this.Tone.SetupConfiguration(using)
	this.Audio.SetupConfiguration(using)
	this.Input.SetupConfiguration(using)
}

func (this Configuration) Validate() error {
	if maximum := keyer.MaximumWpmOf(this.Tone.Ramp); this.Wpm < keyer.MinimumWpm || this.Wpm > maximum {
		return fmt.Errorf("illegal-wpm: %d is not between %d and %d (the maximum for a tone ramp of %gms)", this.Wpm, keyer.MinimumWpm, maximum, this.Tone.Ramp)
	}
	if this.CheckInterval <= 0 {
		return fmt.Errorf("illegal-check-interval: %v", this.CheckInterval)
	}
	if err := this.Tone.Validate(); err != nil {
		return err
	}
	if this.Audio.QueueSize <= 0 {
		return fmt.Errorf("illegal-audio-queue-size: %d", this.Audio.QueueSize)
	}
	return nil
}
