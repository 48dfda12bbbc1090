package game

type Phase int

const (
	PhaseMenu     Phase = iota
	PhasePlaying        // simulation runs
	PhaseGameOver       // lives exhausted, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Session pairs the active phase with the simulation it drives.
type Session struct {
	Phase Phase
	State *State

	// Last holds the events of the most recent playing tick, for rendering.
	Last FrameEvents
}

func NewSession(state *State) *Session {
	return &Session{Phase: PhaseMenu, State: state}
}

// Update runs exactly one phase's logic for this tick and returns the
// simulation events (zero outside PhasePlaying).
func (s *Session) Update(in Input) FrameEvents {
	s.Last = FrameEvents{}

	switch s.Phase {
	case PhaseMenu:
		if in.Primary {
			s.Phase = PhasePlaying
		}

	case PhasePlaying:
		s.Last = s.State.AdvanceFrame(in)
		if s.State.GameOver {
			s.Phase = PhaseGameOver
		}

	case PhaseGameOver:
		if in.Primary {
			s.State.Reset()
			s.Phase = PhasePlaying
		}
	}
	return s.Last
}
