package keyer

import (
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/morse"
	"time"
)

type Phase uint8

const (
	PhaseIdle           = Phase(0)
	PhaseDit            = Phase(1)
	PhaseDah            = Phase(2)
	PhasePauseAfterDit  = Phase(3)
	PhasePauseAfterDah  = Phase(4)
	PhasePauseBeforeDit = Phase(5)
	PhasePauseBeforeDah = Phase(6)
)

func (this Phase) String() string {
	switch this {
	case PhaseIdle:
		return "idle"
	case PhaseDit:
		return "dit"
	case PhaseDah:
		return "dah"
	case PhasePauseAfterDit:
		return "pauseAfterDit"
	case PhasePauseAfterDah:
		return "pauseAfterDah"
	case PhasePauseBeforeDit:
		return "pauseBeforeDit"
	case PhasePauseBeforeDah:
		return "pauseBeforeDah"
	default:
		return fmt.Sprintf("illegal-phase-%d", this)
	}
}

// Next returns the phase which follows this one for the given paddles.
//
// While both paddles are squeezed dits and dahs alternate. A paddle pressed
// during an element is remembered until the following pause is over.
func (this Phase) Next(dit, dah bool) Phase {
	switch this {
	case PhaseIdle:
		if dit {
			return PhaseDit
		}
		if dah {
			return PhaseDah
		}
		return PhaseIdle
	case PhaseDit:
		if dah {
			return PhasePauseBeforeDah
		}
		return PhasePauseAfterDit
	case PhaseDah:
		if dit {
			return PhasePauseBeforeDit
		}
		return PhasePauseAfterDah
	case PhasePauseBeforeDit:
		return PhaseDit
	case PhasePauseBeforeDah:
		return PhaseDah
	case PhasePauseAfterDit:
		if dah {
			return PhaseDah
		}
		return PhaseIdle
	case PhasePauseAfterDah:
		if dit {
			return PhaseDit
		}
		return PhaseIdle
	default:
		return PhaseIdle
	}
}

// Hold is how long this phase lasts for the given dot duration.
func (this Phase) Hold(dot time.Duration) time.Duration {
	switch this {
	case PhaseIdle:
		return 0
	case PhaseDah:
		return 3 * dot
	default:
		return dot
	}
}

// Mark returns the mark which is keyed while in this phase.
func (this Phase) Mark() (morse.Mark, bool) {
	switch this {
	case PhaseDit:
		return morse.Dit, true
	case PhaseDah:
		return morse.Dah, true
	default:
		return 0, false
	}
}
