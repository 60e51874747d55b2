package ingester

import "fmt"

// ErrorKind classifies why ingestion stopped at a slot.
type ErrorKind string

const (
	KindRetryExhausted   ErrorKind = "retry_exhausted"
	KindFatal            ErrorKind = "fatal"
	KindPersistFailed    ErrorKind = "persist_failed"
	KindCheckpointFailed ErrorKind = "checkpoint_failed"
)

// SlotError stops the ingestion loop. The checkpoint stays at Slot-1.
type SlotError struct {
	Slot uint64
	Kind ErrorKind
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d: %s: %v", e.Slot, e.Kind, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }
