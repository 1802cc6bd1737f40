package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

// DedupService rejects double submissions of the same letter payload.
// The payload is content-hashed and the hash parked in memcached with a
// short TTL; memcache.Add is atomic, so the second identical submission
// within the window sees ErrNotStored.
type DedupService struct {
	mc  *memcache.Client
	ttl int32
}

func NewDedupService(mc *memcache.Client, ttlSeconds int32) *DedupService {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &DedupService{mc: mc, ttl: ttlSeconds}
}

func (s *DedupService) hashKey(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash payload")
	}
	return fmt.Sprintf("bureau:letterhash:%016x", xxh3.Hash(raw)), nil
}

func (s *DedupService) Seen(ctx context.Context, payload any) (bool, error) {
	_, span := tracer.Start(ctx, "Dedup.Service.Seen")
	defer span.End()

	key, err := s.hashKey(payload)
	if err != nil {
		return false, err
	}

	err = s.mc.Add(&memcache.Item{
		Key:        key,
		Value:      []byte("1"),
		Expiration: s.ttl,
	})
	if err == memcache.ErrNotStored {
		return true, nil
	}
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	return false, nil
}

// Forget releases a parked payload hash so a retry after a failed
// create is not rejected as a duplicate.
func (s *DedupService) Forget(ctx context.Context, payload any) error {
	_, span := tracer.Start(ctx, "Dedup.Service.Forget")
	defer span.End()

	key, err := s.hashKey(payload)
	if err != nil {
		return err
	}

	err = s.mc.Delete(key)
	if err == memcache.ErrCacheMiss {
		return nil
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}
