package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"github.com/stasiunku/loyalty-core/pkg/apikey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminalAPIKeyService(t *testing.T) *TerminalAPIKeyService {
	t.Helper()
	return NewTerminalAPIKeyService(setupTestDB(t), infrastructures.NewValidator())
}

func TestCreateAndGetAPIKey(t *testing.T) {
	service := newTestTerminalAPIKeyService(t)
	ctx := context.Background()

	created, err := service.CreateAPIKey(ctx, &models.TerminalAPIKeyCreateRequest{
		Name:   "Pump 3",
		Scopes: []apikey.Scope{apikey.ScopeRead, apikey.ScopePurchase},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.APIKey, "pos_"))

	fetched, err := service.GetAPIKey(ctx, created.APIKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.True(t, fetched.HasScope(apikey.ScopePurchase))
	assert.False(t, fetched.HasScope(apikey.ScopeAdmin))
}

func TestCreateAPIKey_InvalidScope(t *testing.T) {
	service := newTestTerminalAPIKeyService(t)

	_, err := service.CreateAPIKey(context.Background(), &models.TerminalAPIKeyCreateRequest{
		Name:   "Pump 3",
		Scopes: []apikey.Scope{"WRITE_EVERYTHING"},
	})
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestGetAPIKey_UnknownKey(t *testing.T) {
	service := newTestTerminalAPIKeyService(t)

	_, err := service.GetAPIKey(context.Background(), "pos_unknown")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestGetAPIKey_Expired(t *testing.T) {
	service := newTestTerminalAPIKeyService(t)
	ctx := context.Background()

	expired := time.Now().Add(-time.Hour)
	created, err := service.CreateAPIKey(ctx, &models.TerminalAPIKeyCreateRequest{
		Name:      "Pump 3",
		Scopes:    []apikey.Scope{apikey.ScopeRead},
		ExpiresAt: &expired,
	})
	require.NoError(t, err)

	_, err = service.GetAPIKey(ctx, created.APIKey)
	assert.ErrorIs(t, err, ErrAPIKeyExpired)
}

func TestRevokeAPIKey(t *testing.T) {
	service := newTestTerminalAPIKeyService(t)
	ctx := context.Background()

	created, err := service.CreateAPIKey(ctx, &models.TerminalAPIKeyCreateRequest{
		Name:   "Pump 3",
		Scopes: []apikey.Scope{apikey.ScopeRead},
	})
	require.NoError(t, err)

	require.NoError(t, service.RevokeAPIKey(ctx, created.ID))

	_, err = service.GetAPIKey(ctx, created.APIKey)
	assert.ErrorIs(t, err, ErrAPIKeyExpired)

	// Revoking twice reports the key as gone.
	err = service.RevokeAPIKey(ctx, created.ID)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestLogAPIKeyUsage(t *testing.T) {
	service := newTestTerminalAPIKeyService(t)
	ctx := context.Background()

	created, err := service.CreateAPIKey(ctx, &models.TerminalAPIKeyCreateRequest{
		Name:   "Pump 3",
		Scopes: []apikey.Scope{apikey.ScopeRead},
	})
	require.NoError(t, err)
	assert.Nil(t, created.LastUsedAt)

	require.NoError(t, service.LogAPIKeyUsage(ctx, &models.TerminalAPIKeyUsage{
		APIKeyID:   created.ID,
		Endpoint:   "/pos/accounts/123",
		Method:     "GET",
		IPAddress:  "10.0.0.8",
		StatusCode: 200,
	}))

	fetched, err := service.GetAPIKey(ctx, created.APIKey)
	require.NoError(t, err)
	assert.NotNil(t, fetched.LastUsedAt)
}
