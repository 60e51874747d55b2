package ingester

// State is a step of the per-slot ingestion loop.
type State int

const (
	StateIdle State = iota
	StateFetching
	StatePersisting
	StateAdvancing
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StatePersisting:
		return "persisting"
	case StateAdvancing:
		return "advancing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
