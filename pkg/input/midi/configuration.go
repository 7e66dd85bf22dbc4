package midi

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/common"
	"github.com/blaubaer/cw-keyer/pkg/keyer"
)

func NewConfiguration() Configuration {
	return Configuration{
		common.Regexp{},
		false,

		0,
		1,
		2,
		0x3D,
	}
}

type Configuration struct {
	Port   common.Regexp `yaml:"port,omitempty"`
	Prompt bool          `yaml:"prompt,omitempty"`

	Channel         uint8 `yaml:"channel,omitempty"`
	DitNote         uint8 `yaml:"ditNote"`
	DahNote         uint8 `yaml:"dahNote"`
	SpeedController uint8 `yaml:"speedController"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("input.midi.port", "Name as regex of the MIDI input port to use. If more than one port matches the first one is used.").
		Envar("CWK_INPUT_MIDI_PORT").
		SetValue(&this.Port)
	using.Flag("input.midi.prompt", "If provided and more than one MIDI input port matches, the port is asked for on the terminal.").
		Envar("CWK_INPUT_MIDI_PROMPT").
		BoolVar(&this.Prompt)
	using.Flag("input.midi.channel", "MIDI channel (1-16) to listen to. 0 means all channels.").
		Envar("CWK_INPUT_MIDI_CHANNEL").
		Uint8Var(&this.Channel)
	using.Flag("input.midi.ditNote", "Note which represents the dit paddle.").
		Envar("CWK_INPUT_MIDI_DIT_NOTE").
		Uint8Var(&this.DitNote)
	using.Flag("input.midi.dahNote", "Note which represents the dah paddle.").
		Envar("CWK_INPUT_MIDI_DAH_NOTE").
		Uint8Var(&this.DahNote)
	using.Flag("input.midi.speedController", "Control change number of the speed knob. Its value 0-127 is mapped to 6-48 WPM.").
		Envar("CWK_INPUT_MIDI_SPEED_CONTROLLER").
		Uint8Var(&this.SpeedController)
}

func (this Configuration) Validate() error {
	if this.Channel > 16 {
		return fmt.Errorf("illegal-midi-channel: %d", this.Channel)
	}
	if this.DitNote > 127 || this.DahNote > 127 || this.SpeedController > 127 {
		return fmt.Errorf("illegal-midi-configuration: notes and controllers have to be between 0 and 127")
	}
	if this.DitNote == this.DahNote {
		return fmt.Errorf("illegal-midi-configuration: dit and dah cannot both be note %d", this.DitNote)
	}
	return nil
}

func (this Configuration) acceptsChannel(ch uint8) bool {
	return this.Channel == 0 || this.Channel == ch+1
}

func (this Configuration) paddleOf(ch, key uint8) (keyer.Paddle, bool) {
	if !this.acceptsChannel(ch) {
		return 0, false
	}
	switch key {
	case this.DitNote:
		return keyer.PaddleDit, true
	case this.DahNote:
		return keyer.PaddleDah, true
	default:
		return 0, false
	}
}
