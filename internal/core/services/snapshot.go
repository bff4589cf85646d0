package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/logger"
)

// snapshotKey is the fixed blob key holding the serialized index.
const snapshotKey = "repolens/index"

// snapshotVersion is the snapshot schema version. Bump when the chunk wire
// format changes; Load rejects versions it does not understand instead of
// decoding garbage.
const snapshotVersion = 1

// indexSnapshot is the persisted form of the whole index: a full snapshot of
// the chunk sequence, embeddings included as plain numeric arrays. Every
// mutation rewrites the snapshot in full; cost grows linearly with index
// size, an accepted bound at single-user scale.
type indexSnapshot struct {
	Version int                    `json:"version"`
	Chunks  []domain.DocumentChunk `json:"chunks"`
}

// persist serializes the full chunk sequence to the blob store, overwriting
// the previous snapshot.
func (s *StoreService) persist(ctx context.Context) error {
	snap := indexSnapshot{
		Version: snapshotVersion,
		Chunks:  s.index.Chunks(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := s.blobs.Put(ctx, snapshotKey, data); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	logger.Debug("Persisted %d chunks (%d bytes)", len(snap.Chunks), len(data))
	return nil
}

// Load restores the index from the persisted snapshot. A snapshot that was
// never written yields an empty index; a blob that cannot be decoded or
// carries an unknown schema version is reported as domain.ErrCorruptSnapshot.
func (s *StoreService) Load(ctx context.Context) error {
	data, err := s.blobs.Get(ctx, snapshotKey)
	if errors.Is(err, domain.ErrNotFound) {
		s.index.Replace(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	var snap indexSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: unsupported schema version %d", domain.ErrCorruptSnapshot, snap.Version)
	}

	s.index.Replace(snap.Chunks)
	logger.Debug("Loaded %d chunks from snapshot", len(snap.Chunks))
	return nil
}
