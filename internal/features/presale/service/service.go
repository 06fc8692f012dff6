package service

import (
	"context"
	stderrors "errors"
	"sort"

	"token-presale-backend/internal/common/errors"
	"token-presale-backend/internal/features/presale/models"
	"token-presale-backend/internal/features/presale/repository"
)

// AddressValidator checks that an identity string is well formed. Format
// check only; existence is the host's problem.
type AddressValidator interface {
	ValidateAddress(addr string) error
}

// Call is the per-invocation envelope supplied by the hosting environment:
// who calls, what they tendered, and the wall-clock time of the call. The
// ledger never reads a clock of its own.
type Call struct {
	Caller string
	Funds  []models.Coin
	Now    int64
}

// PresaleService is the presale/vesting ledger state machine. Mutating
// operations return the outbound instructions the host must execute after
// the call commits; failed calls change nothing and emit nothing.
type PresaleService interface {
	Initialize(ctx context.Context, call Call, req *models.InitRequest) error

	Purchase(ctx context.Context, call Call, quantity uint64) ([]models.Instruction, error)
	TriggerMint(ctx context.Context, call Call) ([]models.Instruction, error)
	WithdrawFunds(ctx context.Context, call Call) ([]models.Instruction, error)
	BindTokenContract(ctx context.Context, call Call, address string) error
	ChangeOwner(ctx context.Context, call Call, address string) error

	GetConfig(ctx context.Context) (*models.PresaleConfig, error)
	GetUser(ctx context.Context, address string) (*models.UserRecord, error)
	ListParticipants(ctx context.Context) ([]string, error)
}

type presaleService struct {
	repo      repository.Repository
	validator AddressValidator

	// contractAddress is this deployment's own identity, the recipient of
	// minted supply.
	contractAddress string
}

func NewPresaleService(repo repository.Repository, validator AddressValidator, contractAddress string) PresaleService {
	return &presaleService{
		repo:            repo,
		validator:       validator,
		contractAddress: contractAddress,
	}
}

func (s *presaleService) Initialize(ctx context.Context, call Call, req *models.InitRequest) error {
	if req.PresaleStart >= req.PresaleEnd {
		return errors.Newf(errors.ErrCodeValidation, "presale_start %d must precede presale_end %d", req.PresaleStart, req.PresaleEnd)
	}
	if req.VestingStepPeriod <= 0 || req.VestingStepPeriod > req.VestingPeriod {
		return errors.Newf(errors.ErrCodeValidation, "vesting_step_period %d must be positive and at most vesting_period %d", req.VestingStepPeriod, req.VestingPeriod)
	}
	if req.Denom == "" {
		return errors.New(errors.ErrCodeValidation, "denom must not be empty")
	}

	cfg := &models.PresaleConfig{
		Owner:             call.Caller,
		TokenContract:     models.TokenContractPlaceholder,
		PresaleStart:      req.PresaleStart,
		PresaleEnd:        req.PresaleEnd,
		TotalSupply:       req.TotalSupply,
		TokenSoldAmount:   0,
		TokenPrice:        req.TokenPrice,
		VestingPeriod:     req.VestingPeriod,
		VestingStepPeriod: req.VestingStepPeriod,
		Denom:             req.Denom,
	}

	if err := s.repo.CreateConfig(ctx, cfg); err != nil {
		if stderrors.Is(err, repository.ErrAlreadyExists) {
			return errors.New(errors.ErrCodeAlreadyInitialized, "presale already initialized")
		}
		return errors.Wrap(err, errors.ErrCodeStorage, "create config")
	}
	return nil
}

// Purchase validates timing, remaining supply and funding, in that order,
// then applies all ledger writes in one atomic commit. The entire tendered
// matching-denom amount is forwarded to the owner, overpayment included.
func (s *presaleService) Purchase(ctx context.Context, call Call, quantity uint64) ([]models.Instruction, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if call.Now < cfg.PresaleStart {
		return nil, errors.Newf(errors.ErrCodePresaleNotStarted, "presale opens at %d, call arrived at %d", cfg.PresaleStart, call.Now)
	}

	remaining := cfg.TotalSupply - cfg.TokenSoldAmount
	if quantity > remaining {
		return nil, errors.Newf(errors.ErrCodeInsufficientSupply, "requested %d, only %d remaining", quantity, remaining).
			WithDetail("total_supply", cfg.TotalSupply).
			WithDetail("token_sold_amount", cfg.TokenSoldAmount)
	}

	cost, ok := mulUint64(cfg.TokenPrice, quantity)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeValidation, "cost overflow for quantity %d at price %d", quantity, cfg.TokenPrice)
	}
	tendered := models.AmountOf(call.Funds, cfg.Denom)
	if tendered < cost {
		return nil, errors.Newf(errors.ErrCodeNotEnoughFunds, "tendered %d %s, need %d", tendered, cfg.Denom, cost)
	}

	// Validations done; compute the full post-state before any write.
	var participants []string
	user, err := s.repo.GetUser(ctx, call.Caller)
	switch {
	case err == nil:
		user.TotalToken += quantity
	case stderrors.Is(err, repository.ErrNotFound):
		user = &models.UserRecord{
			Address:          call.Caller,
			TotalToken:       quantity,
			ReceivedToken:    0,
			LastReceivedTime: cfg.PresaleEnd - cfg.VestingStepPeriod,
		}
		participants, err = s.repo.GetParticipants(ctx)
		if err != nil && !stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.Wrap(err, errors.ErrCodeStorage, "load participants")
		}
		participants = append(participants, call.Caller)
	default:
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "load user")
	}

	cfg.TokenSoldAmount += quantity

	// Coins in other currencies are not forwarded; they stay with the
	// contract and are recorded for a later WithdrawFunds sweep.
	for _, coin := range call.Funds {
		if coin.Denom == cfg.Denom || coin.Amount == 0 {
			continue
		}
		if cfg.RetainedFunds == nil {
			cfg.RetainedFunds = make(map[string]uint64)
		}
		cfg.RetainedFunds[coin.Denom] += coin.Amount
	}

	if err := s.repo.CommitPurchase(ctx, cfg, user, participants); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "commit purchase")
	}

	return []models.Instruction{
		models.NewSendFunds(cfg.Owner, []models.Coin{{Denom: cfg.Denom, Amount: tendered}}),
	}, nil
}

// TriggerMint directs the bound token contract to mint the full supply to
// this contract. No ledger state changes.
func (s *presaleService) TriggerMint(ctx context.Context, call Call) ([]models.Instruction, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(cfg, call); err != nil {
		return nil, err
	}

	return []models.Instruction{
		models.NewMintTokens(cfg.TokenContract, s.contractAddress, cfg.TotalSupply),
	}, nil
}

// WithdrawFunds sweeps every coin retained from past purchases (currencies
// other than the sale denom) to the owner and clears the retained ledger.
func (s *presaleService) WithdrawFunds(ctx context.Context, call Call) ([]models.Instruction, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(cfg, call); err != nil {
		return nil, err
	}

	if len(cfg.RetainedFunds) == 0 {
		return nil, errors.New(errors.ErrCodeNothingToWithdraw, "no retained funds to withdraw")
	}

	coins := retainedCoins(cfg.RetainedFunds)
	cfg.RetainedFunds = nil
	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "save config")
	}

	return []models.Instruction{models.NewSendFunds(cfg.Owner, coins)}, nil
}

// BindTokenContract sets the mint-capable token contract. Authorization runs
// strictly before identity validation so a non-owner learns nothing about
// the address check.
func (s *presaleService) BindTokenContract(ctx context.Context, call Call, address string) error {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := s.requireOwner(cfg, call); err != nil {
		return err
	}
	if err := s.validator.ValidateAddress(address); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidIdentity, "token contract address")
	}

	cfg.TokenContract = address
	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorage, "save config")
	}
	return nil
}

func (s *presaleService) ChangeOwner(ctx context.Context, call Call, address string) error {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := s.requireOwner(cfg, call); err != nil {
		return err
	}
	if err := s.validator.ValidateAddress(address); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidIdentity, "new owner address")
	}

	cfg.Owner = address
	if err := s.repo.SaveConfig(ctx, cfg); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorage, "save config")
	}
	return nil
}

func (s *presaleService) GetConfig(ctx context.Context) (*models.PresaleConfig, error) {
	return s.loadConfig(ctx)
}

func (s *presaleService) GetUser(ctx context.Context, address string) (*models.UserRecord, error) {
	user, err := s.repo.GetUser(ctx, address)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.Newf(errors.ErrCodeNotFound, "no purchase record for %s", address)
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "load user")
	}
	return user, nil
}

func (s *presaleService) ListParticipants(ctx context.Context) ([]string, error) {
	participants, err := s.repo.GetParticipants(ctx)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.New(errors.ErrCodeNotFound, "no purchases recorded yet")
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "load participants")
	}
	return participants, nil
}

func (s *presaleService) loadConfig(ctx context.Context) (*models.PresaleConfig, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.New(errors.ErrCodeNotInitialized, "presale not initialized")
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "load config")
	}
	return cfg, nil
}

func (s *presaleService) requireOwner(cfg *models.PresaleConfig, call Call) error {
	if call.Caller != cfg.Owner {
		return errors.Newf(errors.ErrCodeUnauthorized, "caller %s is not the owner", call.Caller)
	}
	return nil
}

// retainedCoins flattens the retained-funds map into coins sorted by denom
// so the emitted instruction is deterministic.
func retainedCoins(retained map[string]uint64) []models.Coin {
	denoms := make([]string, 0, len(retained))
	for denom := range retained {
		denoms = append(denoms, denom)
	}
	sort.Strings(denoms)

	coins := make([]models.Coin, 0, len(denoms))
	for _, denom := range denoms {
		coins = append(coins, models.Coin{Denom: denom, Amount: retained[denom]})
	}
	return coins
}

func mulUint64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/a != b {
		return 0, false
	}
	return p, true
}
