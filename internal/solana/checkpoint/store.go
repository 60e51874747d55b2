// Package checkpoint tracks the last fully stored slot of an ingestion stream.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrRegression is returned when a save would move the checkpoint backwards.
var ErrRegression = errors.New("checkpoint regression")

// Store guards a stream's checkpoint against regression. It is safe for concurrent use,
// though a stream is expected to have a single writer.
type Store struct {
	backend   Backend
	stream    string
	startSlot uint64

	mu    sync.Mutex
	last  uint64
	known bool
}

// NewStore returns a Store for stream. startSlot is reported by Load while no checkpoint
// has been persisted, so a new stream treats it as already stored.
func NewStore(backend Backend, stream string, startSlot uint64) (*Store, error) {
	if backend == nil {
		return nil, errors.New("checkpoint backend is required")
	}
	if stream == "" {
		return nil, errors.New("checkpoint stream is required")
	}
	return &Store{backend: backend, stream: stream, startSlot: startSlot}, nil
}

// Stream returns the stream name.
func (s *Store) Stream() string { return s.stream }

// Load returns the persisted checkpoint, or (startSlot, false) when there is none.
func (s *Store) Load(ctx context.Context) (uint64, bool, error) {
	slot, exists, err := s.backend.LoadCheckpoint(ctx, s.stream)
	if err != nil {
		return 0, false, fmt.Errorf("load checkpoint %q: %w", s.stream, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !exists {
		s.last, s.known = s.startSlot, true
		return s.startSlot, false, nil
	}
	s.last, s.known = slot, true
	return slot, true, nil
}

// Save persists slot as the new checkpoint. Saving a slot lower than the last loaded or
// saved one fails with ErrRegression; saving the same slot again is a no-op write.
func (s *Store) Save(ctx context.Context, slot uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.known && slot < s.last {
		return fmt.Errorf("save checkpoint %q at %d below %d: %w", s.stream, slot, s.last, ErrRegression)
	}
	if err := s.backend.SaveCheckpoint(ctx, s.stream, slot); err != nil {
		return fmt.Errorf("save checkpoint %q at %d: %w", s.stream, slot, err)
	}
	s.last, s.known = slot, true
	return nil
}

// Reset overwrites the checkpoint unconditionally. It is the operator override for
// re-ingesting a range.
func (s *Store) Reset(ctx context.Context, slot uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SaveCheckpoint(ctx, s.stream, slot); err != nil {
		return fmt.Errorf("reset checkpoint %q to %d: %w", s.stream, slot, err)
	}
	s.last, s.known = slot, true
	return nil
}
