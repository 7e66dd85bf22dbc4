package facade

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/input"
	"github.com/blaubaer/cw-keyer/pkg/input/keyboard"
	"github.com/blaubaer/cw-keyer/pkg/input/midi"
	"github.com/blaubaer/cw-keyer/pkg/keyer"
	"sync"
)

// Facade is the input.Source which was selected by Configuration.Type.
type Facade struct {
	input.Source

	lock sync.RWMutex
}

func (this *Facade) Initialize(conf *Configuration, handler keyer.Handler) error {
	this.lock.Lock()
	defer this.lock.Unlock()

	if this.Source != nil {
		return nil
	}

	switch conf.Type {
	case input.TypeMidi:
		var buf midi.Midi
		if err := buf.Initialize(&conf.Midi, handler); err != nil {
			return err
		}
		this.Source = &buf
	case input.TypeKeyboard:
		var buf keyboard.Keyboard
		if err := buf.Initialize(&conf.Keyboard, handler); err != nil {
			return err
		}
		this.Source = &buf
	default:
		return fmt.Errorf("unsupported input type: %v", conf.Type)
	}

	return nil
}

func (this *Facade) Dispose() error {
	this.lock.Lock()
	defer this.lock.Unlock()

	defer func() {
		this.Source = nil
	}()

	if v := this.Source; v != nil {
		return v.Dispose()
	}
	return nil
}

func (this *Facade) GetType() input.Type {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Source; v != nil {
		return v.GetType()
	}

	return input.TypeDefault
}

func (this *Facade) Name() string {
	this.lock.RLock()
	defer this.lock.RUnlock()

	if v := this.Source; v != nil {
		return v.Name()
	}

	return ""
}
