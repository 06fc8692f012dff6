package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"token-presale-backend/internal/features/presale/models"
	"token-presale-backend/internal/features/presale/repository"
)

const (
	configKey       = "presale:config"
	participantsKey = "presale:participants"
	userKeyPrefix   = "presale:user:"
)

type presaleRepository struct {
	client *redis.Client
}

// NewRepository returns a Redis-backed presale repository. Records are stored
// as JSON blobs under fixed keys; buyer records are keyed by address.
func NewRepository(client *redis.Client) repository.Repository {
	return &presaleRepository{client: client}
}

func userKey(address string) string {
	return userKeyPrefix + address
}

func (r *presaleRepository) CreateConfig(ctx context.Context, cfg *models.PresaleConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, configKey, raw, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrAlreadyExists
	}
	return nil
}

func (r *presaleRepository) GetConfig(ctx context.Context) (*models.PresaleConfig, error) {
	raw, err := r.client.Get(ctx, configKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var cfg models.PresaleConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func (r *presaleRepository) SaveConfig(ctx context.Context, cfg *models.PresaleConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, configKey, raw, 0).Err()
}

func (r *presaleRepository) GetUser(ctx context.Context, address string) (*models.UserRecord, error) {
	raw, err := r.client.Get(ctx, userKey(address)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var user models.UserRecord
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", address, err)
	}
	return &user, nil
}

func (r *presaleRepository) GetParticipants(ctx context.Context) ([]string, error) {
	list, err := r.client.LRange(ctx, participantsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, repository.ErrNotFound
	}
	return list, nil
}

func (r *presaleRepository) CommitPurchase(ctx context.Context, cfg *models.PresaleConfig, user *models.UserRecord, participants []string) error {
	cfgRaw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	userRaw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Single MULTI/EXEC so a half-applied purchase is never visible.
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, configKey, cfgRaw, 0)
		pipe.Set(ctx, userKey(user.Address), userRaw, 0)
		if participants != nil {
			pipe.Del(ctx, participantsKey)
			pipe.RPush(ctx, participantsKey, toInterfaces(participants)...)
		}
		return nil
	})
	return err
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
