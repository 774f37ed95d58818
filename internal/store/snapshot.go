package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tupyy/achievement-tracker/internal/models"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

const (
	keyLibrarySnapshot   = "library_snapshot"
	keyLibrarySnapshotTS = "library_snapshot_ts"
)

// SnapshotStore persists the aggregated library snapshot and its timestamp.
type SnapshotStore struct {
	kv KV
}

func NewSnapshotStore(kv KV) *SnapshotStore {
	return &SnapshotStore{kv: kv}
}

// Get returns the cached snapshot. A missing value yields ResourceNotFoundError and a value
// that fails to decode, or whose timestamp disagrees with the snapshot, yields CacheCorruptError.
func (s *SnapshotStore) Get(ctx context.Context) (*models.LibrarySnapshot, error) {
	data, err := s.kv.Get(ctx, keyLibrarySnapshot)
	if err != nil {
		return nil, err
	}
	rawTS, err := s.kv.Get(ctx, keyLibrarySnapshotTS)
	if err != nil {
		return nil, err
	}

	var snapshot models.LibrarySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, srvErrors.NewCacheCorruptError(keyLibrarySnapshot, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, string(rawTS))
	if err != nil {
		return nil, srvErrors.NewCacheCorruptError(keyLibrarySnapshotTS, err)
	}
	if !ts.Equal(snapshot.FetchedAt) {
		return nil, srvErrors.NewCacheCorruptError(keyLibrarySnapshotTS,
			fmt.Errorf("timestamp %s does not match snapshot %s", ts, snapshot.FetchedAt))
	}

	if snapshot.AchievementsByGame == nil {
		snapshot.AchievementsByGame = map[int][]models.MergedAchievement{}
	}
	if snapshot.Games == nil {
		snapshot.Games = []models.Game{}
	}

	return &snapshot, nil
}

// Save replaces any prior snapshot in full.
func (s *SnapshotStore) Save(ctx context.Context, snapshot models.LibrarySnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, keyLibrarySnapshot, data); err != nil {
		return err
	}
	return s.kv.Set(ctx, keyLibrarySnapshotTS, []byte(snapshot.FetchedAt.Format(time.RFC3339Nano)))
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, keyLibrarySnapshotTS); err != nil {
		return err
	}
	return s.kv.Remove(ctx, keyLibrarySnapshot)
}
