package facade

import (
	"github.com/blaubaer/cw-keyer/pkg/common"
	"github.com/blaubaer/cw-keyer/pkg/input"
	"github.com/blaubaer/cw-keyer/pkg/input/keyboard"
	"github.com/blaubaer/cw-keyer/pkg/input/midi"
)

func NewConfiguration() Configuration {
	return Configuration{
		Type:     input.TypeDefault,
		Midi:     midi.NewConfiguration(),
		Keyboard: keyboard.NewConfiguration(),
	}
}

type Configuration struct {
	Type     input.Type             `yaml:"type"`
	Midi     midi.Configuration     `yaml:"midi,omitempty"`
	Keyboard keyboard.Configuration `yaml:"keyboard,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("input", "Where paddles and speed are coming from. All possible values: "+input.AllTypes.String()).
		Envar("CWK_INPUT").
		SetValue(&this.Type)

	this.Midi.SetupConfiguration(using)
	this.Keyboard.SetupConfiguration(using)
}
