package keyboard

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/input"
	"github.com/blaubaer/cw-keyer/pkg/keyer"
	log "github.com/echocat/slf4g"
	hook "github.com/robotn/gohook"
	"sync"
)

// Keyboard uses two keys of the keyboard as paddles. The keys are captured
// globally, so the application does not need to have the focus.
type Keyboard struct {
	codes keycodes

	stop  chan struct{}
	done  chan struct{}
	mutex sync.Mutex
}

func (this *Keyboard) Initialize(conf *Configuration, handler keyer.Handler) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if this.stop != nil {
		return nil
	}

	codes, err := conf.keycodes()
	if err != nil {
		return err
	}
	this.codes = codes
	this.stop = make(chan struct{})
	this.done = make(chan struct{})

	events := hook.Start()
	go this.run(events, handler)

	log.With("dit", conf.Dit).
		With("dah", conf.Dah).
		Info("Keyboard paddles enabled.")

	return nil
}

func (this *Keyboard) run(events chan hook.Event, handler keyer.Handler) {
	defer close(this.done)
	for {
		select {
		case <-this.stop:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if event, ok := this.codes.translate(ev, handler.Wpm); ok {
				event.ApplyTo(handler)
			}
		}
	}
}

func (this *Keyboard) Dispose() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if this.stop == nil {
		return nil
	}

	close(this.stop)
	<-this.done
	hook.End()
	this.stop = nil
	this.done = nil

	return nil
}

func (this *Keyboard) GetType() input.Type {
	return input.TypeKeyboard
}

func (this *Keyboard) Name() string {
	return fmt.Sprintf("keyboard(%d,%d)", this.codes.dit, this.codes.dah)
}

// translate turns a key event into an event of the keyer. Auto repeated
// presses of a paddle key are harmless as paddles are level triggered.
func (this keycodes) translate(ev hook.Event, currentWpm func() int) (keyer.Event, bool) {
	var pressed bool
	switch ev.Kind {
	case hook.KeyDown, hook.KeyHold:
		pressed = true
	case hook.KeyUp:
		pressed = false
	default:
		return nil, false
	}

	switch ev.Keycode {
	case this.dit:
		return keyer.PaddleChanged{Paddle: keyer.PaddleDit, Pressed: pressed}, true
	case this.dah:
		return keyer.PaddleChanged{Paddle: keyer.PaddleDah, Pressed: pressed}, true
	}

	if !pressed || ev.Keycode == 0 {
		return nil, false
	}
	switch ev.Keycode {
	case this.faster:
		return keyer.SpeedChanged{Raw: keyer.RawOfWpm(currentWpm() + this.speedStep)}, true
	case this.slower:
		return keyer.SpeedChanged{Raw: keyer.RawOfWpm(currentWpm() - this.speedStep)}, true
	}
	return nil, false
}
