package keyer

import (
	"context"
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/synth"
	"time"
)

func newTestState(wpm int) *State {
	return NewState(synth.NewTone(), wpm)
}

func newTestKeyer(state *State) (*Keyer, *recordingDisplay, *recordingSink, *fakeClock) {
	display := &recordingDisplay{}
	sink := &recordingSink{}
	clock := newFakeClock()
	instance := NewKeyer(state, sink, display)
	instance.Clock = clock
	return instance, display, sink, clock
}

type fakeClock struct {
	start     time.Time
	now       time.Time
	onAdvance func(elapsed time.Duration)
}

func newFakeClock() *fakeClock {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &fakeClock{start: start, now: start}
}

func (this *fakeClock) Now() time.Time {
	return this.now
}

func (this *fakeClock) Elapsed() time.Duration {
	return this.now.Sub(this.start)
}

func (this *fakeClock) SleepUntil(ctx context.Context, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline.After(this.now) {
		this.now = deadline
	}
	if v := this.onAdvance; v != nil {
		v(this.Elapsed())
	}
	return nil
}

// recordingDisplay records every operation and emulates what a terminal
// would show.
type recordingDisplay struct {
	operations []string
	screen     []rune
}

func (this *recordingDisplay) Print(s string) {
	this.operations = append(this.operations, "print:"+s)
	this.screen = append(this.screen, []rune(s)...)
}

func (this *recordingDisplay) Erase(n int) {
	this.operations = append(this.operations, fmt.Sprintf("erase:%d", n))
	this.screen = this.screen[:max(0, len(this.screen)-n)]
}

func (this *recordingDisplay) Screen() string {
	return string(this.screen)
}

type recordingSink struct {
	buffers [][]byte
}

func (this *recordingSink) Push(b []byte) {
	this.buffers = append(this.buffers, b)
}

func (this *recordingSink) Lengths() (result []int) {
	for _, b := range this.buffers {
		result = append(result, len(b))
	}
	return
}
