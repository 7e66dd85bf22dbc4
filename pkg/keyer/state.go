package keyer

import (
	"github.com/blaubaer/cw-keyer/pkg/morse"
	"github.com/blaubaer/cw-keyer/pkg/synth"
	"sync"
	"time"
)

func NewState(tone synth.Tone, wpm int) *State {
	result := &State{
		tone:       tone,
		maximumWpm: MaximumWpmOf(tone.Ramp),
	}
	result.SetSpeed(wpm)
	result.announce = false
	return result
}

// State is shared between the input sources, which change it, and the Keyer
// which reads it. Speed, dot duration and both rendered buffers always belong
// to the same speed.
type State struct {
	tone       synth.Tone
	maximumWpm int

	wpm         int
	dotDuration time.Duration
	ditBuffer   []byte
	dahBuffer   []byte
	announce    bool
	requests    uint64

	paddleDit bool
	paddleDah bool

	mutex sync.Mutex
}

// SetSpeed changes the speed to the given words per minute and renders the
// buffers of both elements for it. The buffers are rendered outside of the
// lock and swapped together with the speed. If SetSpeed is called again
// while rendering, only the latest call is applied.
func (this *State) SetSpeed(wpm int) {
	request, wpm, changed := this.requestSpeed(wpm)
	if !changed {
		return
	}

	dotMs := DotMillis(wpm)
	this.commitSpeed(request, wpm, this.tone.Render(dotMs), this.tone.Render(3*dotMs))
}

func (this *State) requestSpeed(wpm int) (uint64, int, bool) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	wpm = clampWpm(wpm, this.maximumWpm)
	this.requests++
	return this.requests, wpm, this.wpm != wpm
}

func (this *State) commitSpeed(request uint64, wpm int, dit, dah []byte) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	if request != this.requests {
		return
	}
	this.wpm = wpm
	this.dotDuration = DotDurationOf(wpm)
	this.ditBuffer = dit
	this.dahBuffer = dah
	this.announce = true
}

func (this *State) SetSpeedRaw(raw uint8) {
	this.SetSpeed(WpmOfRaw(raw))
}

func (this *State) SetPaddle(which Paddle, pressed bool) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	switch which {
	case PaddleDit:
		this.paddleDit = pressed
	case PaddleDah:
		this.paddleDah = pressed
	}
}

func (this *State) Paddles() (dit, dah bool) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return this.paddleDit, this.paddleDah
}

func (this *State) Wpm() int {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return this.wpm
}

func (this *State) DotDuration() time.Duration {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return this.dotDuration
}

// Timing returns speed, dot duration and the rendered buffers as one
// consistent snapshot.
func (this *State) Timing() Timing {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	return Timing{
		Wpm: this.wpm,
		Dot: this.dotDuration,
		Dit: this.ditBuffer,
		Dah: this.dahBuffer,
	}
}

// TakeSpeedAnnouncement returns the current speed if it changed since the
// last call.
func (this *State) TakeSpeedAnnouncement() (int, bool) {
	this.mutex.Lock()
	defer this.mutex.Unlock()
	if !this.announce {
		return 0, false
	}
	this.announce = false
	return this.wpm, true
}

// Timing is a snapshot of State. The buffers are never modified afterward; a
// speed change replaces them.
type Timing struct {
	Wpm int
	Dot time.Duration
	Dit []byte
	Dah []byte
}

func (this Timing) Buffer(mark morse.Mark) []byte {
	if mark == morse.Dah {
		return this.Dah
	}
	return this.Dit
}
