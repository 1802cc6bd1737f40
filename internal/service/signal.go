package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/mzafar/marriage-bureau/internal/domain"
)

// Channel carrying letter lifecycle events.
const SignalChannel = "bureau:letters"

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.LetterEvent) error {
	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, SignalChannel, jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Subscribe opens a pubsub subscription on the letter event channel.
// The caller owns the returned subscription and must Close it.
func (s *SignalService) Subscribe(ctx context.Context) *redis.PubSub {
	return s.rdb.Subscribe(ctx, SignalChannel)
}
