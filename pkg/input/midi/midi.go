package midi

import (
	"errors"
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/common"
	"github.com/blaubaer/cw-keyer/pkg/input"
	"github.com/blaubaer/cw-keyer/pkg/keyer"
	log "github.com/echocat/slf4g"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	"sync"
)

var ErrNoPort = errors.New("no MIDI input port available")

// Midi receives paddles as notes and the speed as control change from a
// MIDI input port.
type Midi struct {
	conf *Configuration

	driver *rtmididrv.Driver
	in     drivers.In
	stop   func()
	mutex  sync.Mutex
}

func (this *Midi) Initialize(conf *Configuration, handler keyer.Handler) (rErr error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if this.driver != nil {
		return nil
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			if err := this.dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	driver, err := rtmididrv.New()
	if err != nil {
		return fmt.Errorf("cannot initialize MIDI driver: %w", err)
	}
	this.driver = driver
	this.conf = conf

	in, err := this.selectPort()
	if err != nil {
		return err
	}
	if err := in.Open(); err != nil {
		return fmt.Errorf("cannot open MIDI input port %q: %w", in.String(), err)
	}
	this.in = in

	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if event, ok := this.conf.translate(msg); ok {
			event.ApplyTo(handler)
		}
	}, midi.HandleError(func(err error) {
		log.WithError(err).
			With("port", in.String()).
			Warn("Cannot receive from MIDI input port.")
	}))
	if err != nil {
		return fmt.Errorf("cannot listen to MIDI input port %q: %w", in.String(), err)
	}
	this.stop = stop

	log.With("port", in.String()).
		Info("MIDI input port connected.")

	success = true
	return nil
}

func (this *Midi) selectPort() (drivers.In, error) {
	all, err := this.driver.Ins()
	if err != nil {
		return nil, fmt.Errorf("cannot list MIDI input ports: %w", err)
	}

	var candidates []drivers.In
	var names []string
	for _, in := range all {
		log.With("port", in.String()).
			With("number", in.Number()).
			Debug("MIDI input port found.")
		if this.conf.Port.MatchString(in.String()) {
			candidates = append(candidates, in)
			names = append(names, in.String())
		}
	}

	if len(candidates) == 0 {
		if this.conf.Port.HasContent() {
			return nil, fmt.Errorf("%w matching %q", ErrNoPort, this.conf.Port)
		}
		return nil, ErrNoPort
	}

	if this.conf.Prompt {
		i, err := common.RequestChoiceFromTerminal("MIDI input port", names)
		if err != nil {
			return nil, err
		}
		return candidates[i], nil
	}

	return candidates[0], nil
}

func (this *Midi) Dispose() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	return this.dispose()
}

func (this *Midi) dispose() (rErr error) {
	defer func() {
		if v := this.driver; v != nil {
			if err := v.Close(); err != nil && rErr == nil {
				rErr = fmt.Errorf("cannot close MIDI driver: %w", err)
			}
		}
		this.driver = nil
	}()

	if v := this.stop; v != nil {
		v()
		this.stop = nil
	}
	if v := this.in; v != nil {
		this.in = nil
		if err := v.Close(); err != nil {
			return fmt.Errorf("cannot close MIDI input port %q: %w", v.String(), err)
		}
	}

	return nil
}

func (this *Midi) GetType() input.Type {
	return input.TypeMidi
}

func (this *Midi) Name() string {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if v := this.in; v != nil {
		return v.String()
	}
	return ""
}
