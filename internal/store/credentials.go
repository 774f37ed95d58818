package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tupyy/achievement-tracker/internal/models"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

const keyCredentials = "credentials"

// CredentialsStore handles the single stored key/id pair.
type CredentialsStore struct {
	kv KV
}

func NewCredentialsStore(kv KV) *CredentialsStore {
	return &CredentialsStore{kv: kv}
}

func (s *CredentialsStore) Get(ctx context.Context) (*models.Credentials, error) {
	data, err := s.kv.Get(ctx, keyCredentials)
	if err != nil {
		return nil, err
	}

	var creds models.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, srvErrors.NewCacheCorruptError(keyCredentials, err)
	}
	return &creds, nil
}

// Save stores or replaces the credentials.
func (s *CredentialsStore) Save(ctx context.Context, creds models.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	return s.kv.Set(ctx, keyCredentials, data)
}

func (s *CredentialsStore) Delete(ctx context.Context) error {
	return s.kv.Remove(ctx, keyCredentials)
}
