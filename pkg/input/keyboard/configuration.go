package keyboard

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/common"
	hook "github.com/robotn/gohook"
)

func NewConfiguration() Configuration {
	return Configuration{
		"[",
		"]",

		"=",
		"-",
		1,
	}
}

type Configuration struct {
	Dit string `yaml:"dit"`
	Dah string `yaml:"dah"`

	Faster    string `yaml:"faster,omitempty"`
	Slower    string `yaml:"slower,omitempty"`
	SpeedStep int    `yaml:"speedStep,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("input.keyboard.dit", "Key which acts as dit paddle.").
		Envar("CWK_INPUT_KEYBOARD_DIT").
		StringVar(&this.Dit)
	using.Flag("input.keyboard.dah", "Key which acts as dah paddle.").
		Envar("CWK_INPUT_KEYBOARD_DAH").
		StringVar(&this.Dah)
	using.Flag("input.keyboard.faster", "Key which increases the speed. Empty to disable.").
		Envar("CWK_INPUT_KEYBOARD_FASTER").
		StringVar(&this.Faster)
	using.Flag("input.keyboard.slower", "Key which decreases the speed. Empty to disable.").
		Envar("CWK_INPUT_KEYBOARD_SLOWER").
		StringVar(&this.Slower)
	using.Flag("input.keyboard.speedStep", "Words per minute the speed changes with every press of the faster or slower key.").
		Envar("CWK_INPUT_KEYBOARD_SPEED_STEP").
		IntVar(&this.SpeedStep)
}

type keycodes struct {
	dit, dah       uint16
	faster, slower uint16
	speedStep      int
}

func (this Configuration) keycodes() (result keycodes, err error) {
	lookup := func(name, key string, optional bool) (uint16, error) {
		if key == "" && optional {
			return 0, nil
		}
		v, ok := hook.Keycode[key]
		if !ok {
			return 0, fmt.Errorf("illegal-keyboard-%s-key: %q", name, key)
		}
		return v, nil
	}

	if result.dit, err = lookup("dit", this.Dit, false); err != nil {
		return
	}
	if result.dah, err = lookup("dah", this.Dah, false); err != nil {
		return
	}
	if result.faster, err = lookup("faster", this.Faster, true); err != nil {
		return
	}
	if result.slower, err = lookup("slower", this.Slower, true); err != nil {
		return
	}
	if result.dit == result.dah {
		return result, fmt.Errorf("illegal-keyboard-configuration: dit and dah cannot both be %q", this.Dit)
	}
	result.speedStep = max(1, this.SpeedStep)
	return
}
