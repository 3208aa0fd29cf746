package texasholdem

// Phase represents the state of the hand
// Phases only ever move forward
type Phase string

// constants for Phase
const (
	PhasePreFlop  Phase = "preflop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseShowdown Phase = "showdown"
	PhaseFinished Phase = "finished"
)

// IsBettingRound returns true if players can act in this phase
func (p Phase) IsBettingRound() bool {
	switch p {
	case PhasePreFlop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}

	return false
}

// next returns the phase that follows and how many community cards are dealt going into it
func (p Phase) next() (Phase, int) {
	switch p {
	case PhasePreFlop:
		return PhaseFlop, 3
	case PhaseFlop:
		return PhaseTurn, 1
	case PhaseTurn:
		return PhaseRiver, 1
	case PhaseRiver:
		return PhaseShowdown, 0
	}

	return PhaseFinished, 0
}
