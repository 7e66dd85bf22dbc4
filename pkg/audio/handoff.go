package audio

import (
	"github.com/blaubaer/cw-keyer/pkg/synth"
	log "github.com/echocat/slf4g"
	"sync/atomic"
)

const DefaultQueueSize = 4

func NewHandoff(queueSize int) *Handoff {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Handoff{
		queue: make(chan []byte, queueSize),
	}
}

// Handoff passes rendered buffers from the keyer to the audio output. Push
// and Read never block. Read is expected to be called by exactly one
// goroutine.
type Handoff struct {
	queue   chan []byte
	current []byte
	dropped atomic.Uint64
}

// Push queues the given buffer for playback. If the queue is full the
// buffer is dropped.
func (this *Handoff) Push(b []byte) {
	select {
	case this.queue <- b:
	default:
		n := this.dropped.Add(1)
		log.With("samples", len(b)).
			With("dropped", n).
			Debug("Audio queue is full; buffer dropped.")
	}
}

// Read fills p with the queued samples and the remainder with silence.
func (this *Handoff) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(this.current) == 0 && !this.next() {
			break
		}
		c := copy(p[n:], this.current)
		this.current = this.current[c:]
		n += c
	}
	for i := n; i < len(p); i++ {
		p[i] = synth.Silence
	}
	return len(p), nil
}

func (this *Handoff) next() bool {
	select {
	case b := <-this.queue:
		this.current = b
		return true
	default:
		return false
	}
}

func (this *Handoff) Dropped() uint64 {
	return this.dropped.Load()
}
