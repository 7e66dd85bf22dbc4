package midi

import (
	"github.com/blaubaer/cw-keyer/pkg/keyer"
	"gitlab.com/gomidi/midi/v2"
)

// translate turns a MIDI message into an event of the keyer. A note on with
// velocity 0 is treated as note off.
func (this Configuration) translate(msg midi.Message) (keyer.Event, bool) {
	var ch, key, vel, controller, value uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if p, ok := this.paddleOf(ch, key); ok {
			return keyer.PaddleChanged{Paddle: p, Pressed: true}, true
		}
	case msg.GetNoteEnd(&ch, &key):
		if p, ok := this.paddleOf(ch, key); ok {
			return keyer.PaddleChanged{Paddle: p, Pressed: false}, true
		}
	case msg.GetControlChange(&ch, &controller, &value):
		if this.acceptsChannel(ch) && controller == this.SpeedController {
			return keyer.SpeedChanged{Raw: value}, true
		}
	}
	return nil, false
}
