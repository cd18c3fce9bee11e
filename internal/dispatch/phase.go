package dispatch

import "fmt"

// Phase tracks where a transcription request is in its lifecycle. Every
// request walks validate -> acquire -> invoke -> stream -> done unless it
// aborts along the way.
type Phase string

type Event string

const (
	PhaseValidate Phase = "validate"
	PhaseAcquire  Phase = "acquire"
	PhaseInvoke   Phase = "invoke"
	PhaseStream   Phase = "stream"
	PhaseDone     Phase = "done"
	PhaseAborted  Phase = "aborted"
)

const (
	EventValidated Event = "validated"
	EventAcquired  Event = "acquired"
	EventInvoked   Event = "invoked"
	EventDrained   Event = "drained"
	EventAbort     Event = "abort"
)

func Advance(current Phase, event Event) (Phase, error) {
	if event == EventAbort {
		return PhaseAborted, nil
	}

	switch current {
	case PhaseValidate:
		switch event {
		case EventValidated:
			return PhaseAcquire, nil
		default:
			return current, invalidAdvance(current, event)
		}
	case PhaseAcquire:
		switch event {
		case EventAcquired:
			return PhaseInvoke, nil
		default:
			return current, invalidAdvance(current, event)
		}
	case PhaseInvoke:
		switch event {
		case EventInvoked:
			return PhaseStream, nil
		default:
			return current, invalidAdvance(current, event)
		}
	case PhaseStream:
		switch event {
		case EventDrained:
			return PhaseDone, nil
		default:
			return current, invalidAdvance(current, event)
		}
	case PhaseDone, PhaseAborted:
		return current, invalidAdvance(current, event)
	default:
		return current, fmt.Errorf("unknown phase %q", current)
	}
}

func invalidAdvance(phase Phase, event Event) error {
	return fmt.Errorf("invalid advance: %s --(%s)--> ?", phase, event)
}
