package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"token-presale-backend/internal/features/presale/models"
	"token-presale-backend/internal/features/presale/repository"
)

func testConfig() *models.PresaleConfig {
	return &models.PresaleConfig{
		Owner:             "creator",
		TokenContract:     models.TokenContractPlaceholder,
		PresaleStart:      100,
		PresaleEnd:        400,
		TotalSupply:       1000,
		TokenPrice:        1,
		VestingPeriod:     600,
		VestingStepPeriod: 120,
		Denom:             "uusd",
	}
}

func TestConfigLifecycle(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.GetConfig(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.CreateConfig(ctx, testConfig()))

	err = repo.CreateConfig(ctx, testConfig())
	require.ErrorIs(t, err, repository.ErrAlreadyExists)

	cfg, err := repo.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "creator", cfg.Owner)

	cfg.Owner = "new-owner"
	require.NoError(t, repo.SaveConfig(ctx, cfg))

	cfg, err = repo.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-owner", cfg.Owner)
}

func TestGetConfig_ReturnsCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	cfg := testConfig()
	cfg.RetainedFunds = map[string]uint64{"uluna": 42}
	require.NoError(t, repo.CreateConfig(ctx, cfg))

	loaded, err := repo.GetConfig(ctx)
	require.NoError(t, err)
	loaded.Owner = "mutated"
	loaded.RetainedFunds["uluna"] = 999

	reloaded, err := repo.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "creator", reloaded.Owner)
	assert.Equal(t, uint64(42), reloaded.RetainedFunds["uluna"])
}

func TestUserAndParticipants(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.GetUser(ctx, "buyer1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetParticipants(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	cfg := testConfig()
	cfg.TokenSoldAmount = 100
	user := &models.UserRecord{Address: "buyer1", TotalToken: 100, LastReceivedTime: 280}
	require.NoError(t, repo.CommitPurchase(ctx, cfg, user, []string{"buyer1"}))

	got, err := repo.GetUser(ctx, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), got.TotalToken)

	participants, err := repo.GetParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"buyer1"}, participants)

	loaded, err := repo.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), loaded.TokenSoldAmount)
}

func TestCommitPurchase_NilParticipantsKeepsRegistry(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	cfg := testConfig()
	cfg.TokenSoldAmount = 100
	user := &models.UserRecord{Address: "buyer1", TotalToken: 100}
	require.NoError(t, repo.CommitPurchase(ctx, cfg, user, []string{"buyer1"}))

	// Repeat purchase: registry argument is nil, the list must survive.
	cfg.TokenSoldAmount = 200
	user.TotalToken = 200
	require.NoError(t, repo.CommitPurchase(ctx, cfg, user, nil))

	participants, err := repo.GetParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"buyer1"}, participants)

	got, err := repo.GetUser(ctx, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, uint64(200), got.TotalToken)
}
