package keyer

import (
	"context"
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/morse"
	log "github.com/echocat/slf4g"
	"time"
	"unicode/utf8"
)

const (
	// IdleTick is how often the paddles are polled while idle.
	IdleTick = 50 * time.Millisecond

	// WordSpaceDots is the silence, in dots, after which a word is complete.
	WordSpaceDots = 5
)

// AudioSink receives the rendered buffer of every keyed element. Push must
// not block.
type AudioSink interface {
	Push([]byte)
}

func NewKeyer(state *State, audio AudioSink, display Display) *Keyer {
	return &Keyer{
		State:   state,
		Audio:   audio,
		Display: display,
		Clock:   SystemClock,
	}
}

// Keyer is the iambic keyer. It runs in one goroutine and owns the symbols
// of the character which is currently keyed.
type Keyer struct {
	State   *State
	Audio   AudioSink
	Display Display
	Clock   Clock

	phase    Phase
	deadline time.Time
	symbols  morse.Symbols
	pending  int
}

func (this *Keyer) Phase() Phase {
	return this.phase
}

func (this *Keyer) Symbols() morse.Symbols {
	return this.symbols
}

// Run steps the keyer until ctx is done.
func (this *Keyer) Run(ctx context.Context) error {
	log.With("wpm", this.State.Wpm()).
		Debug("Keyer started.")
	defer log.Debug("Keyer stopped.")

	for {
		if err := this.Step(ctx); err != nil {
			return err
		}
	}
}

// Step emits the current phase, holds it for its duration and moves on to
// the next phase depending on the paddles.
func (this *Keyer) Step(ctx context.Context) error {
	timing := this.State.Timing()
	if mark, ok := this.phase.Mark(); ok {
		this.emit(mark, timing.Buffer(mark))
	}

	if hold := this.phase.Hold(timing.Dot); hold > 0 {
		if now := this.Clock.Now(); now.Sub(this.deadline) > hold {
			this.deadline = now
		}
		this.deadline = this.deadline.Add(hold)
		if err := this.Clock.SleepUntil(ctx, this.deadline); err != nil {
			return err
		}
	}

	dit, dah := this.State.Paddles()
	if this.phase == PhaseIdle && !dit && !dah {
		return this.idle(ctx)
	}

	next := this.phase.Next(dit, dah)
	if this.phase == PhaseIdle {
		this.deadline = this.Clock.Now()
	}
	this.phase = next
	return nil
}

func (this *Keyer) emit(mark morse.Mark, buffer []byte) {
	this.Display.Print(mark.String())
	this.symbols = this.symbols.Append(mark)
	this.pending++
	this.Audio.Push(buffer)
}

func (this *Keyer) idle(ctx context.Context) error {
	if this.symbols.IsZero() {
		this.announceSpeed()
		return this.Clock.SleepUntil(ctx, this.Clock.Now().Add(IdleTick))
	}

	this.showDecoded()

	start := this.Clock.Now()
	for tick := 1; ; tick++ {
		if err := this.Clock.SleepUntil(ctx, start.Add(time.Duration(tick)*IdleTick)); err != nil {
			return err
		}
		dit, dah := this.State.Paddles()
		elapsed := this.Clock.Now().Sub(start)

		switch resolveSilence(elapsed, this.State.DotDuration(), dit || dah) {
		case silenceContinued:
			this.Display.Erase(this.pending)
			this.Display.Print(string(this.symbols))
			this.pending = len(this.symbols)
			return nil
		case silenceWordEnd:
			this.Display.Print(" ")
			this.reset()
			return nil
		case silenceCharacterEnd:
			this.reset()
			return nil
		}
	}
}

func (this *Keyer) showDecoded() {
	if v, ok := morse.Decode(this.symbols); ok {
		this.Display.Erase(this.pending)
		this.Display.Print(v)
		this.pending = utf8.RuneCountInString(v)
		log.With("symbols", this.symbols).
			With("character", v).
			Trace("Character decoded.")
		return
	}

	this.Display.Print(" ")
	this.pending++
	log.With("symbols", this.symbols).
		Trace("Character unknown.")
}

func (this *Keyer) reset() {
	this.symbols = ""
	this.pending = 0
}

func (this *Keyer) announceSpeed() {
	if wpm, ok := this.State.TakeSpeedAnnouncement(); ok {
		this.Display.Print(fmt.Sprintf("<%d>", wpm))
		log.With("wpm", wpm).
			Info("Speed changed.")
	}
}

type silence uint8

const (
	silencePending = silence(iota)
	silenceContinued
	silenceCharacterEnd
	silenceWordEnd
)

func (this silence) String() string {
	switch this {
	case silencePending:
		return "pending"
	case silenceContinued:
		return "continued"
	case silenceCharacterEnd:
		return "characterEnd"
	case silenceWordEnd:
		return "wordEnd"
	default:
		return fmt.Sprintf("illegal-silence-%d", this)
	}
}

// resolveSilence decides what a silence of elapsed after the last element
// means. A paddle pressed within one dot continues the current character.
func resolveSilence(elapsed, dot time.Duration, paddlePressed bool) silence {
	switch {
	case paddlePressed && elapsed <= dot:
		return silenceContinued
	case elapsed >= WordSpaceDots*dot:
		return silenceWordEnd
	case paddlePressed:
		return silenceCharacterEnd
	default:
		return silencePending
	}
}
