package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/audio"
	"github.com/blaubaer/cw-keyer/pkg/common"
	"github.com/blaubaer/cw-keyer/pkg/input/facade"
	"github.com/blaubaer/cw-keyer/pkg/keyer"
	log "github.com/echocat/slf4g"
	"io"
	"os"
	"sync"
	"time"
)

func NewApp() *App {
	return &App{
		Output: os.Stdout,
		config: NewConfiguration(),
	}
}

type App struct {
	AudioStack        audio.Stack
	Input             facade.Facade
	ConfigurationFile string
	Output            io.Writer

	configFromFlags Configuration
	config          Configuration
	state           *keyer.State
	handoff         *audio.Handoff
	keyer           *keyer.Keyer
	mutex           sync.Mutex
}

func (this *App) SetupConfiguration(using common.FlagHolder) {
	this.configFromFlags.SetupConfiguration(using)

	using.Flag("configuration", "Defines the file from which the configuration should be loaded.").
		Short('c').
		Envar("CWK_CONFIGURATION").
		StringVar(&this.ConfigurationFile)
}

// Configuration returns the effective configuration. It is only complete
// after LoadConfiguration or Initialize was called.
func (this *App) Configuration() Configuration {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return this.config
}

// LoadConfiguration loads the configuration file and applies the flags on
// top of it.
func (this *App) LoadConfiguration() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return this.loadConfiguration()
}

func (this *App) loadConfiguration() error {
	config := NewConfiguration()
	if fn := this.ConfigurationFile; fn != "" {
		if err := config.loadFromFile(fn, false); err != nil {
			return err
		}
	} else if err := config.loadFromFile(defaultConfigurationFile(), true); err != nil {
		return err
	}
	if err := config.mergeFrom(this.configFromFlags); err != nil {
		return fmt.Errorf("cannot apply flags to configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	this.config = config
	return nil
}

// PrintConfiguration writes the effective configuration as YAML to w.
func (this *App) PrintConfiguration(w io.Writer) error {
	if err := this.LoadConfiguration(); err != nil {
		return err
	}
	config := this.Configuration()
	return config.saveTo(w)
}

func (this *App) Initialize() (rErr error) {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	success := false
	defer func() {
		if !success {
			if err := this.dispose(); err != nil && rErr == nil {
				rErr = err
			}
		}
	}()

	if err := this.loadConfiguration(); err != nil {
		return err
	}

	this.state = keyer.NewState(this.config.Tone, this.config.Wpm)

	var sink keyer.AudioSink = discardSink{}
	if !this.config.Audio.Disabled {
		handoff := audio.NewHandoff(this.config.Audio.QueueSize)
		if err := this.AudioStack.Initialize(&this.config.Audio, this.config.Tone.SampleRate, handoff); err != nil {
			return err
		}
		this.handoff = handoff
		sink = handoff
	} else {
		log.Info("Audio output disabled.")
	}

	console := keyer.NewConsole(this.Output)
	if !console.IsTerminal() {
		log.Warn("Output is not a terminal. Decoded characters will not replace their marks.")
	}
	this.keyer = keyer.NewKeyer(this.state, sink, console)

	if err := this.Input.Initialize(&this.config.Input, this.state); err != nil {
		return err
	}

	log.With("input", this.Input.GetType()).
		With("source", this.Input.Name()).
		With("wpm", this.config.Wpm).
		Info("Keyer ready.")

	success = true
	return nil
}

// Run keys until ctx is done or the audio output fails.
func (this *App) Run(ctx context.Context) error {
	if this.keyer == nil {
		return errors.New("app not initialized")
	}

	ctxInner, cancel := context.WithCancel(ctx)
	defer cancel()

	keyerDone := make(chan error, 1)
	go func() {
		keyerDone <- this.keyer.Run(ctxInner)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Check loop interrupted.")
			cancel()
			<-keyerDone
			return nil
		case err := <-keyerDone:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case <-time.After(this.config.CheckInterval):
		}

		if err := this.AudioStack.Err(); err != nil {
			cancel()
			<-keyerDone
			return fmt.Errorf("audio output failed: %w", err)
		}
	}
}

func (this *App) Dispose() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return this.dispose()
}

func (this *App) dispose() (rErr error) {
	defer func() {
		if err := this.AudioStack.Dispose(); err != nil && rErr == nil {
			rErr = err
		}
		if v := this.handoff; v != nil {
			if n := v.Dropped(); n > 0 {
				log.With("dropped", n).
					Warn("Some elements were not played because the audio output could not keep up.")
			}
			this.handoff = nil
		}
	}()

	return this.Input.Dispose()
}

type discardSink struct{}

func (discardSink) Push([]byte) {}
