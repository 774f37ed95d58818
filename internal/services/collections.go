package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/store"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

// CollectionService manages named collections of achievements.
// Every mutation is persisted before it returns.
type CollectionService struct {
	store *store.Store
	mu    sync.Mutex
}

func NewCollectionService(st *store.Store) *CollectionService {
	return &CollectionService{store: st}
}

// List returns all collections in creation order.
func (c *CollectionService) List(ctx context.Context) ([]models.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *CollectionService) Get(ctx context.Context, name string) (models.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	collections, err := c.load(ctx)
	if err != nil {
		return models.Collection{}, err
	}
	idx := indexOf(collections, strings.TrimSpace(name))
	if idx < 0 {
		return models.Collection{}, srvErrors.NewCollectionNotFoundError(name)
	}
	return collections[idx], nil
}

// Create returns the collection named name, creating it empty at the end of the list if needed.
func (c *CollectionService) Create(ctx context.Context, name string) (models.Collection, error) {
	name, err := collectionName(name)
	if err != nil {
		return models.Collection{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	collections, err := c.load(ctx)
	if err != nil {
		return models.Collection{}, err
	}
	if idx := indexOf(collections, name); idx >= 0 {
		return collections[idx], nil
	}

	created := models.Collection{Name: name, Entries: []models.CollectionEntry{}}
	collections = append(collections, created)
	if err := c.store.Collections().Save(ctx, collections); err != nil {
		return models.Collection{}, err
	}

	zap.S().Named("collection_service").Infow("collection created", "name", name)
	return created, nil
}

// AddEntry appends entry to the named collection, creating the collection when missing.
// An entry already present with the same (appid, apiname) leaves the collection untouched.
func (c *CollectionService) AddEntry(ctx context.Context, name string, entry models.CollectionEntry) (models.Collection, error) {
	name, err := collectionName(name)
	if err != nil {
		return models.Collection{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	collections, err := c.load(ctx)
	if err != nil {
		return models.Collection{}, err
	}

	idx := indexOf(collections, name)
	if idx < 0 {
		collections = append(collections, models.Collection{Name: name, Entries: []models.CollectionEntry{}})
		idx = len(collections) - 1
	} else if collections[idx].Contains(entry.AppID, entry.APIName) {
		zap.S().Named("collection_service").Debugw("entry already in collection", "name", name, "appid", entry.AppID, "apiname", entry.APIName)
		return collections[idx], nil
	}

	collections[idx].Entries = append(collections[idx].Entries, entry)
	if err := c.store.Collections().Save(ctx, collections); err != nil {
		return models.Collection{}, err
	}

	zap.S().Named("collection_service").Infow("entry added", "name", name, "appid", entry.AppID, "apiname", entry.APIName)
	return collections[idx], nil
}

// RemoveEntry removes the entry at index from the named collection.
func (c *CollectionService) RemoveEntry(ctx context.Context, name string, index int) (models.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	collections, err := c.load(ctx)
	if err != nil {
		return models.Collection{}, err
	}

	idx := indexOf(collections, strings.TrimSpace(name))
	if idx < 0 {
		return models.Collection{}, srvErrors.NewCollectionNotFoundError(name)
	}

	entries := collections[idx].Entries
	if index < 0 || index >= len(entries) {
		return models.Collection{}, srvErrors.NewOutOfRangeError(index, len(entries))
	}

	updated := make([]models.CollectionEntry, 0, len(entries)-1)
	updated = append(updated, entries[:index]...)
	updated = append(updated, entries[index+1:]...)
	collections[idx].Entries = updated

	if err := c.store.Collections().Save(ctx, collections); err != nil {
		return models.Collection{}, err
	}

	zap.S().Named("collection_service").Infow("entry removed", "name", name, "index", index)
	return collections[idx], nil
}

// Delete removes the named collection. Deleting an unknown collection is not an error.
func (c *CollectionService) Delete(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	collections, err := c.load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(collections, strings.TrimSpace(name))
	if idx < 0 {
		return nil
	}

	collections = append(collections[:idx], collections[idx+1:]...)
	if err := c.store.Collections().Save(ctx, collections); err != nil {
		return err
	}

	zap.S().Named("collection_service").Infow("collection deleted", "name", name)
	return nil
}

// load reads the collections. A corrupt value is treated as no collections.
func (c *CollectionService) load(ctx context.Context) ([]models.Collection, error) {
	collections, err := c.store.Collections().List(ctx)
	if srvErrors.IsCacheCorruptError(err) {
		zap.S().Named("collection_service").Warnw("stored collections are unreadable, starting empty", "error", err)
		return []models.Collection{}, nil
	}
	return collections, err
}

func collectionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", srvErrors.NewInvalidArgumentError("collection name must not be empty")
	}
	return name, nil
}

func indexOf(collections []models.Collection, name string) int {
	for i, col := range collections {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// EntryFor builds the collection entry for apiName among a game's merged achievements.
func EntryFor(game models.Game, achievements []models.MergedAchievement, apiName string) (models.CollectionEntry, error) {
	for _, a := range achievements {
		if a.APIName == apiName {
			return models.NewCollectionEntry(game.Name, a), nil
		}
	}
	return models.CollectionEntry{}, srvErrors.NewResourceNotFoundError("achievement", fmt.Sprintf("%d/%s", game.AppID, apiName))
}
