package memory

import (
	"context"
	"sync"

	"token-presale-backend/internal/features/presale/models"
	"token-presale-backend/internal/features/presale/repository"
)

// Repository is an in-memory implementation of repository.Repository used in
// tests. It copies records on the way in and out so callers never share
// pointers with the store.
type Repository struct {
	mu           sync.RWMutex
	config       *models.PresaleConfig
	users        map[string]*models.UserRecord
	participants []string
}

// NewRepository creates an empty in-memory presale repository.
func NewRepository() *Repository {
	return &Repository{users: make(map[string]*models.UserRecord)}
}

func copyConfig(cfg *models.PresaleConfig) *models.PresaleConfig {
	c := *cfg
	if cfg.RetainedFunds != nil {
		c.RetainedFunds = make(map[string]uint64, len(cfg.RetainedFunds))
		for denom, amount := range cfg.RetainedFunds {
			c.RetainedFunds[denom] = amount
		}
	}
	return &c
}

func (r *Repository) CreateConfig(_ context.Context, cfg *models.PresaleConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.config != nil {
		return repository.ErrAlreadyExists
	}
	r.config = copyConfig(cfg)
	return nil
}

func (r *Repository) GetConfig(_ context.Context) (*models.PresaleConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.config == nil {
		return nil, repository.ErrNotFound
	}
	return copyConfig(r.config), nil
}

func (r *Repository) SaveConfig(_ context.Context, cfg *models.PresaleConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = copyConfig(cfg)
	return nil
}

func (r *Repository) GetUser(_ context.Context, address string) (*models.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[address]
	if !ok {
		return nil, repository.ErrNotFound
	}
	userCopy := *user
	return &userCopy, nil
}

func (r *Repository) GetParticipants(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.participants) == 0 {
		return nil, repository.ErrNotFound
	}
	return append([]string(nil), r.participants...), nil
}

func (r *Repository) CommitPurchase(_ context.Context, cfg *models.PresaleConfig, user *models.UserRecord, participants []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = copyConfig(cfg)
	userCopy := *user
	r.users[user.Address] = &userCopy
	if participants != nil {
		r.participants = append([]string(nil), participants...)
	}
	return nil
}
