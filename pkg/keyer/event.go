package keyer

import "fmt"

// Handler receives the events of an input source. It is implemented by
// State.
type Handler interface {
	SetPaddle(which Paddle, pressed bool)
	SetSpeedRaw(raw uint8)
	Wpm() int
}

type Event interface {
	ApplyTo(Handler)
	String() string
}

type PaddleChanged struct {
	Paddle  Paddle
	Pressed bool
}

func (this PaddleChanged) ApplyTo(h Handler) {
	h.SetPaddle(this.Paddle, this.Pressed)
}

func (this PaddleChanged) String() string {
	if this.Pressed {
		return fmt.Sprintf("%v pressed", this.Paddle)
	}
	return fmt.Sprintf("%v released", this.Paddle)
}

type SpeedChanged struct {
	Raw uint8
}

func (this SpeedChanged) ApplyTo(h Handler) {
	h.SetSpeedRaw(this.Raw)
}

func (this SpeedChanged) String() string {
	return fmt.Sprintf("speed %d (%d wpm)", this.Raw, WpmOfRaw(this.Raw))
}
