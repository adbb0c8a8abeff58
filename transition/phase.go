// Package transition sequences a blob image-transition: static display,
// explosion scatter, morph toward the target layout, and a final blend
// hold. Timing is driven entirely by the dt passed to Update, so tests
// and frame loops alike control the clock.
package transition

// Phase identifies one stage of the transition sequence
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseStatic
	PhaseExplosion
	PhaseMorph
	PhaseBlend
	PhaseComplete

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStatic:
		return "static"
	case PhaseExplosion:
		return "explosion"
	case PhaseMorph:
		return "morph"
	case PhaseBlend:
		return "blend"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// CanTransition checks if a phase transition is valid. The sequence is
// linear; any phase may abort to idle, and complete may restart.
func CanTransition(from, to Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseIdle:      {PhaseStatic},
		PhaseStatic:    {PhaseExplosion, PhaseIdle},
		PhaseExplosion: {PhaseMorph, PhaseIdle},
		PhaseMorph:     {PhaseBlend, PhaseIdle},
		PhaseBlend:     {PhaseComplete, PhaseIdle},
		PhaseComplete:  {PhaseStatic, PhaseIdle},
	}

	allowed := validTransitions[from]
	for _, phase := range allowed {
		if phase == to {
			return true
		}
	}
	return false
}

// nextPhase returns the successor in the linear sequence
func nextPhase(p Phase) Phase {
	switch p {
	case PhaseStatic:
		return PhaseExplosion
	case PhaseExplosion:
		return PhaseMorph
	case PhaseMorph:
		return PhaseBlend
	case PhaseBlend:
		return PhaseComplete
	default:
		return p
	}
}
