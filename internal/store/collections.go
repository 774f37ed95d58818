package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tupyy/achievement-tracker/internal/models"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

const keyCollections = "collections"

// CollectionStore persists the ordered list of collections as one value.
type CollectionStore struct {
	kv KV
}

func NewCollectionStore(kv KV) *CollectionStore {
	return &CollectionStore{kv: kv}
}

// List returns the stored collections, or an empty list when nothing was saved yet.
// An undecodable value is reported as CacheCorruptError.
func (s *CollectionStore) List(ctx context.Context) ([]models.Collection, error) {
	data, err := s.kv.Get(ctx, keyCollections)
	if srvErrors.IsResourceNotFoundError(err) {
		return []models.Collection{}, nil
	}
	if err != nil {
		return nil, err
	}

	var collections []models.Collection
	if err := json.Unmarshal(data, &collections); err != nil {
		return nil, srvErrors.NewCacheCorruptError(keyCollections, err)
	}
	if collections == nil {
		collections = []models.Collection{}
	}
	for i := range collections {
		if collections[i].Entries == nil {
			collections[i].Entries = []models.CollectionEntry{}
		}
	}
	return collections, nil
}

func (s *CollectionStore) Save(ctx context.Context, collections []models.Collection) error {
	data, err := json.Marshal(collections)
	if err != nil {
		return fmt.Errorf("failed to encode collections: %w", err)
	}
	return s.kv.Set(ctx, keyCollections, data)
}
