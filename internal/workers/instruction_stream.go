package workers

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"token-presale-backend/internal/features/presale/models"
)

const instructionStream = "presale:instructions"

// InstructionPublisher appends committed outbound instructions to a Redis
// stream so the executing host can consume them in order. Each stream entry
// carries the originating operation, the instruction type and the full
// instruction as JSON.
type InstructionPublisher struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

func NewInstructionPublisher(rdb *redis.Client, logger zerolog.Logger) *InstructionPublisher {
	return &InstructionPublisher{rdb: rdb, logger: logger}
}

func (p *InstructionPublisher) Publish(ctx context.Context, operation string, instructions []models.Instruction) {
	for _, in := range instructions {
		payload, err := json.Marshal(in)
		if err != nil {
			p.logger.Error().Err(err).Str("operation", operation).Msg("Failed to encode instruction")
			continue
		}

		err = p.rdb.XAdd(ctx, &redis.XAddArgs{
			Stream: instructionStream,
			Values: map[string]interface{}{
				"operation":   operation,
				"type":        string(in.Type),
				"instruction": payload,
			},
		}).Err()
		if err != nil {
			// The call itself already committed; the host can still recover
			// the instruction from the execute response.
			p.logger.Error().Err(err).
				Str("operation", operation).
				Str("instruction", string(in.Type)).
				Msg("Failed to publish instruction to stream")
		}
	}
}
