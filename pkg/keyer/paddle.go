package keyer

import (
	"fmt"
)

type Paddle uint8

const (
	PaddleDit = Paddle(0)
	PaddleDah = Paddle(1)
)

func (this Paddle) String() string {
	switch this {
	case PaddleDit:
		return "dit"
	case PaddleDah:
		return "dah"
	default:
		return fmt.Sprintf("illegal-paddle-%d", this)
	}
}
