package session

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// TTLStore forgets users that stayed idle for longer than the configured
// TTL. Reads refresh the TTL.
type TTLStore struct {
	cache *ttlcache.Cache[string, UserState]
}

// NewTTLStore starts the expiry loop; call Stop to release it. A capacity of
// 0 means unbounded.
func NewTTLStore(ttl time.Duration, capacity uint64) *TTLStore {
	opts := []ttlcache.Option[string, UserState]{
		ttlcache.WithTTL[string, UserState](ttl),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, UserState](capacity))
	}

	cache := ttlcache.New[string, UserState](opts...)
	go cache.Start()

	return &TTLStore{cache: cache}
}

func (s *TTLStore) Get(_ context.Context, id string) (UserState, error) {
	item := s.cache.Get(id)
	if item == nil {
		return NewUserState(), nil
	}
	return item.Value(), nil
}

func (s *TTLStore) Set(_ context.Context, id string, st UserState) error {
	s.cache.Set(id, st, ttlcache.DefaultTTL)
	return nil
}

func (s *TTLStore) Len() int {
	return s.cache.Len()
}

func (s *TTLStore) Stop() {
	s.cache.Stop()
}
