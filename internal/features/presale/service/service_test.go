package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "token-presale-backend/internal/common/errors"
	"token-presale-backend/internal/features/presale/models"
	"token-presale-backend/internal/features/presale/repository/memory"
)

const (
	testContractAddr = "presale-contract"
	testOwner        = "creator"

	testStart = int64(1_700_000_120)
	testEnd   = int64(1_700_000_420)
)

// stubValidator accepts anything that looks vaguely like an address. Tests
// drive malformed-identity paths with spaces and bangs.
type stubValidator struct{}

func (stubValidator) ValidateAddress(addr string) error {
	if addr == "" || strings.ContainsAny(addr, " !") {
		return fmt.Errorf("malformed address %q", addr)
	}
	return nil
}

func newTestService(t *testing.T) (PresaleService, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	return NewPresaleService(repo, stubValidator{}, testContractAddr), repo
}

func initPresale(t *testing.T, svc PresaleService) {
	t.Helper()
	err := svc.Initialize(context.Background(), Call{Caller: testOwner}, &models.InitRequest{
		PresaleStart:      testStart,
		PresaleEnd:        testEnd,
		TotalSupply:       1000,
		TokenPrice:        1,
		VestingPeriod:     600,
		VestingStepPeriod: 120,
		Denom:             "uusd",
	})
	require.NoError(t, err)
}

func uusd(amount uint64) []models.Coin {
	return []models.Coin{{Denom: "uusd", Amount: amount}}
}

func requireCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code, "unexpected error code: %v", err)
}

func TestInitialize(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)

	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testOwner, cfg.Owner)
	assert.Equal(t, models.TokenContractPlaceholder, cfg.TokenContract)
	assert.Equal(t, uint64(1000), cfg.TotalSupply)
	assert.Equal(t, uint64(0), cfg.TokenSoldAmount)
	assert.Equal(t, "uusd", cfg.Denom)
}

func TestInitialize_Twice(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)

	err := svc.Initialize(context.Background(), Call{Caller: "someone-else"}, &models.InitRequest{
		PresaleStart:      testStart,
		PresaleEnd:        testEnd,
		TotalSupply:       1,
		TokenPrice:        1,
		VestingPeriod:     600,
		VestingStepPeriod: 120,
		Denom:             "uusd",
	})
	requireCode(t, err, apperrors.ErrCodeAlreadyInitialized)

	// The original owner survives the attempt.
	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testOwner, cfg.Owner)
}

func TestInitialize_InvalidWindow(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Initialize(context.Background(), Call{Caller: testOwner}, &models.InitRequest{
		PresaleStart:      testEnd,
		PresaleEnd:        testStart,
		TotalSupply:       1000,
		TokenPrice:        1,
		VestingPeriod:     600,
		VestingStepPeriod: 120,
		Denom:             "uusd",
	})
	requireCode(t, err, apperrors.ErrCodeValidation)

	err = svc.Initialize(context.Background(), Call{Caller: testOwner}, &models.InitRequest{
		PresaleStart:      testStart,
		PresaleEnd:        testEnd,
		TotalSupply:       1000,
		TokenPrice:        1,
		VestingPeriod:     600,
		VestingStepPeriod: 700,
		Denom:             "uusd",
	})
	requireCode(t, err, apperrors.ErrCodeValidation)
}

func TestPurchase_Scenario(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	// Buyer A purchases 100 for exactly 100 uusd.
	instructions, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(100), Now: testStart}, 100)
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	assert.Equal(t, models.NewSendFunds(testOwner, uusd(100)), instructions[0])

	user, err := svc.GetUser(ctx, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), user.TotalToken)
	assert.Equal(t, uint64(0), user.ReceivedToken)
	assert.Equal(t, testEnd-120, user.LastReceivedTime)

	// A purchases 300 more; the vesting anchor does not move.
	_, err = svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(300), Now: testStart + 10}, 300)
	require.NoError(t, err)

	user, err = svc.GetUser(ctx, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, uint64(400), user.TotalToken)
	assert.Equal(t, testEnd-120, user.LastReceivedTime)

	// Buyer B overpays: 600 tendered for 500 units. The full 600 is
	// forwarded to the owner, nothing is refunded.
	instructions, err = svc.Purchase(ctx, Call{Caller: "buyer2", Funds: uusd(600), Now: testStart + 20}, 500)
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	assert.Equal(t, models.NewSendFunds(testOwner, uusd(600)), instructions[0])

	// B's purchase does not touch A's record.
	user, err = svc.GetUser(ctx, "buyer1")
	require.NoError(t, err)
	assert.Equal(t, uint64(400), user.TotalToken)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(900), cfg.TokenSoldAmount)

	participants, err := svc.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"buyer1", "buyer2"}, participants)
}

func TestPurchase_StartBoundary(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	_, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(10), Now: testStart - 1}, 10)
	requireCode(t, err, apperrors.ErrCodePresaleNotStarted)

	_, err = svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(10), Now: testStart}, 10)
	require.NoError(t, err)
}

func TestPurchase_FundsBoundary(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	_, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(99), Now: testStart}, 100)
	requireCode(t, err, apperrors.ErrCodeNotEnoughFunds)

	_, err = svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(100), Now: testStart}, 100)
	require.NoError(t, err)
}

func TestPurchase_WrongDenomNotCounted(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)

	funds := []models.Coin{{Denom: "uluna", Amount: 1000}}
	_, err := svc.Purchase(context.Background(), Call{Caller: "buyer1", Funds: funds, Now: testStart}, 100)
	requireCode(t, err, apperrors.ErrCodeNotEnoughFunds)
}

func TestPurchase_SupplyExhausted(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	_, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(1001), Now: testStart}, 1001)
	requireCode(t, err, apperrors.ErrCodeInsufficientSupply)

	_, err = svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(900), Now: testStart}, 900)
	require.NoError(t, err)

	_, err = svc.Purchase(ctx, Call{Caller: "buyer2", Funds: uusd(101), Now: testStart}, 101)
	requireCode(t, err, apperrors.ErrCodeInsufficientSupply)

	// The remaining 100 can still be bought.
	_, err = svc.Purchase(ctx, Call{Caller: "buyer2", Funds: uusd(100), Now: testStart}, 100)
	require.NoError(t, err)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.TotalSupply, cfg.TokenSoldAmount)
}

func TestPurchase_RegistryIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(10), Now: testStart}, 10)
		require.NoError(t, err)
	}

	participants, err := svc.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"buyer1"}, participants)
}

func TestPurchase_FailureLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	_, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: uusd(5), Now: testStart}, 100)
	requireCode(t, err, apperrors.ErrCodeNotEnoughFunds)

	_, err = svc.GetUser(ctx, "buyer1")
	requireCode(t, err, apperrors.ErrCodeNotFound)

	_, err = svc.ListParticipants(ctx)
	requireCode(t, err, apperrors.ErrCodeNotFound)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.TokenSoldAmount)
}

func TestPurchase_RetainsForeignCoins(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	funds := []models.Coin{
		{Denom: "uusd", Amount: 150},
		{Denom: "uluna", Amount: 42},
	}
	instructions, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: funds, Now: testStart}, 100)
	require.NoError(t, err)

	// Only the sale denom is forwarded, in full.
	require.Len(t, instructions, 1)
	assert.Equal(t, models.NewSendFunds(testOwner, uusd(150)), instructions[0])

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"uluna": 42}, cfg.RetainedFunds)
}

func TestWithdrawFunds(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	funds := []models.Coin{
		{Denom: "uusd", Amount: 100},
		{Denom: "uluna", Amount: 42},
		{Denom: "uatom", Amount: 7},
	}
	_, err := svc.Purchase(ctx, Call{Caller: "buyer1", Funds: funds, Now: testStart}, 100)
	require.NoError(t, err)

	_, err = svc.WithdrawFunds(ctx, Call{Caller: "buyer1"})
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	instructions, err := svc.WithdrawFunds(ctx, Call{Caller: testOwner})
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	expected := models.NewSendFunds(testOwner, []models.Coin{
		{Denom: "uatom", Amount: 7},
		{Denom: "uluna", Amount: 42},
	})
	assert.Equal(t, expected, instructions[0])

	// The retained ledger is cleared; a second sweep has nothing to do.
	_, err = svc.WithdrawFunds(ctx, Call{Caller: testOwner})
	requireCode(t, err, apperrors.ErrCodeNothingToWithdraw)
}

func TestWithdrawFunds_Empty(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)

	_, err := svc.WithdrawFunds(context.Background(), Call{Caller: testOwner})
	requireCode(t, err, apperrors.ErrCodeNothingToWithdraw)
}

func TestBindTokenContract(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	err := svc.BindTokenContract(ctx, Call{Caller: testOwner}, "token-contract-1")
	require.NoError(t, err)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-contract-1", cfg.TokenContract)
}

func TestBindTokenContract_InvalidAddress(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	err := svc.BindTokenContract(ctx, Call{Caller: testOwner}, "not a valid address!")
	requireCode(t, err, apperrors.ErrCodeInvalidIdentity)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TokenContractPlaceholder, cfg.TokenContract)
}

func TestBindTokenContract_NonOwnerMalformed(t *testing.T) {
	// Authorization is checked before address validation: a non-owner with a
	// malformed address is told Unauthorized, not InvalidIdentity.
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	err := svc.BindTokenContract(ctx, Call{Caller: "intruder"}, "not a valid address!")
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TokenContractPlaceholder, cfg.TokenContract)
}

func TestChangeOwner(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	err := svc.ChangeOwner(ctx, Call{Caller: testOwner}, "new-owner")
	require.NoError(t, err)

	// The old owner is out, the new one is in.
	err = svc.ChangeOwner(ctx, Call{Caller: testOwner}, "creator-again")
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	err = svc.BindTokenContract(ctx, Call{Caller: "new-owner"}, "token-contract-1")
	require.NoError(t, err)
}

func TestChangeOwner_InvalidAddress(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)

	err := svc.ChangeOwner(context.Background(), Call{Caller: testOwner}, "bad owner!")
	requireCode(t, err, apperrors.ErrCodeInvalidIdentity)

	cfg, err := svc.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testOwner, cfg.Owner)
}

func TestTriggerMint(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.BindTokenContract(ctx, Call{Caller: testOwner}, "token-contract-1"))

	instructions, err := svc.TriggerMint(ctx, Call{Caller: testOwner})
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	assert.Equal(t, models.NewMintTokens("token-contract-1", testContractAddr, 1000), instructions[0])

	// No ledger state changes.
	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.TokenSoldAmount)
}

func TestAdmin_Unauthorized(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()
	intruder := Call{Caller: "intruder"}

	_, err := svc.TriggerMint(ctx, intruder)
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	_, err = svc.WithdrawFunds(ctx, intruder)
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	err = svc.BindTokenContract(ctx, intruder, "token-contract-1")
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	err = svc.ChangeOwner(ctx, intruder, "intruder")
	requireCode(t, err, apperrors.ErrCodeUnauthorized)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, testOwner, cfg.Owner)
	assert.Equal(t, models.TokenContractPlaceholder, cfg.TokenContract)
}

func TestQueries_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetConfig(ctx)
	requireCode(t, err, apperrors.ErrCodeNotInitialized)

	initPresale(t, svc)

	_, err = svc.GetUser(ctx, "nobody")
	requireCode(t, err, apperrors.ErrCodeNotFound)

	_, err = svc.ListParticipants(ctx)
	requireCode(t, err, apperrors.ErrCodeNotFound)
}

func TestSoldAmountInvariant(t *testing.T) {
	svc, _ := newTestService(t)
	initPresale(t, svc)
	ctx := context.Background()

	var accepted uint64
	buyers := []string{"buyer1", "buyer2", "buyer3"}
	quantities := []uint64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89}

	for i, q := range quantities {
		buyer := buyers[i%len(buyers)]
		_, err := svc.Purchase(ctx, Call{Caller: buyer, Funds: uusd(q), Now: testStart + int64(i)}, q)
		require.NoError(t, err)
		accepted += q

		cfg, err := svc.GetConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, accepted, cfg.TokenSoldAmount)
		require.LessOrEqual(t, cfg.TokenSoldAmount, cfg.TotalSupply)
	}

	participants, err := svc.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, buyers, participants)
}
