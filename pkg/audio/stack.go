package audio

import (
	"fmt"
	"github.com/ebitengine/oto/v3"
	log "github.com/echocat/slf4g"
	"io"
	"sync"
)

// Stack owns the audio output. It plays unsigned 8-bit mono samples which
// it reads from the source given to Initialize.
type Stack struct {
	initialized bool
	context     *oto.Context
	player      *oto.Player
	mutex       sync.RWMutex
}

func (this *Stack) Initialize(conf *Configuration, sampleRate int, source io.Reader) error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if this.initialized {
		return nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   conf.BufferSize,
	})
	if err != nil {
		return fmt.Errorf("cannot open audio output: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(source)
	player.SetBufferSize(conf.BufferBytes(sampleRate))
	player.Play()

	log.With("sampleRate", sampleRate).
		With("bufferSize", conf.BufferSize).
		Info("Audio output opened.")

	this.context = ctx
	this.player = player
	this.initialized = true
	return nil
}

func (this *Stack) Dispose() error {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	if !this.initialized {
		return nil
	}

	defer func() {
		this.player = nil
		this.context = nil
		this.initialized = false
	}()

	if v := this.player; v != nil {
		if err := v.Close(); err != nil {
			return fmt.Errorf("cannot close audio output: %w", err)
		}
	}

	return nil
}

// Err reports an error of the underlying audio device, if any.
func (this *Stack) Err() error {
	this.mutex.RLock()
	defer this.mutex.RUnlock()

	if v := this.context; v != nil {
		return v.Err()
	}
	return nil
}
