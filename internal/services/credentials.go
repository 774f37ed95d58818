package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/store"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

type CredentialsService struct {
	store *store.Store
}

func NewCredentialsService(st *store.Store) *CredentialsService {
	return &CredentialsService{store: st}
}

// Get returns the stored credentials or CredentialsMissingError when none are usable.
func (c *CredentialsService) Get(ctx context.Context) (models.Credentials, error) {
	creds, err := c.store.Credentials().Get(ctx)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) || srvErrors.IsCacheCorruptError(err) {
			return models.Credentials{}, srvErrors.NewCredentialsMissingError()
		}
		return models.Credentials{}, err
	}
	if !creds.IsComplete() {
		return models.Credentials{}, srvErrors.NewCredentialsMissingError()
	}
	return *creds, nil
}

// Save replaces the stored credentials. Both values are required.
func (c *CredentialsService) Save(ctx context.Context, apiKey, steamID string) (models.Credentials, error) {
	creds := models.Credentials{
		APIKey:    strings.TrimSpace(apiKey),
		SteamID:   strings.TrimSpace(steamID),
		UpdatedAt: time.Now().UTC(),
	}
	if creds.APIKey == "" {
		return models.Credentials{}, srvErrors.NewInvalidArgumentError("api key must not be empty")
	}
	if creds.SteamID == "" {
		return models.Credentials{}, srvErrors.NewInvalidArgumentError("steam id must not be empty")
	}

	if err := c.store.Credentials().Save(ctx, creds); err != nil {
		return models.Credentials{}, err
	}

	zap.S().Named("credentials_service").Infow("credentials saved", "steam_id", creds.SteamID, "api_key", creds.MaskedKey())
	return creds, nil
}

func (c *CredentialsService) Delete(ctx context.Context) error {
	if err := c.store.Credentials().Delete(ctx); err != nil {
		return err
	}
	zap.S().Named("credentials_service").Info("credentials removed")
	return nil
}
