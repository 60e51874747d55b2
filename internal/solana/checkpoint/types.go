package checkpoint

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Backend persists one checkpoint row per stream. SaveCheckpoint must be a single
	// atomic write.
	Backend interface {
		LoadCheckpoint(ctx context.Context, stream string) (slot uint64, exists bool, err error)
		SaveCheckpoint(ctx context.Context, stream string, slot uint64) error
	}
)
