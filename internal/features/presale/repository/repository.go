package repository

import (
	"context"
	"errors"

	"token-presale-backend/internal/features/presale/models"
)

// Sentinel errors shared by every Repository implementation.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Repository is the persistence contract for the presale ledger: a singleton
// config record, one record per buyer, and the ordered participant registry.
//
// The host model is single-writer: exactly one call mutates the store at a
// time, so implementations need no cross-call coordination beyond making each
// commit atomic.
type Repository interface {
	// CreateConfig persists the singleton config; ErrAlreadyExists if one is
	// already stored.
	CreateConfig(ctx context.Context, cfg *models.PresaleConfig) error
	// GetConfig loads the singleton config; ErrNotFound before initialization.
	GetConfig(ctx context.Context) (*models.PresaleConfig, error)
	// SaveConfig overwrites the singleton config.
	SaveConfig(ctx context.Context, cfg *models.PresaleConfig) error

	// GetUser loads one buyer record; ErrNotFound if the address never bought.
	GetUser(ctx context.Context, address string) (*models.UserRecord, error)

	// GetParticipants returns the registry in insertion order; ErrNotFound if
	// no purchase has ever been recorded.
	GetParticipants(ctx context.Context) ([]string, error)

	// CommitPurchase atomically persists the outcome of one accepted purchase:
	// the updated config, the created-or-updated buyer record, and (for a
	// first-time buyer) the extended registry. participants is nil when the
	// registry is unchanged. Either every write lands or none do.
	CommitPurchase(ctx context.Context, cfg *models.PresaleConfig, user *models.UserRecord, participants []string) error
}
