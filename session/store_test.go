package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoresReturnStartStateForUnknownSender(t *testing.T) {
	ttl := NewTTLStore(time.Minute, 0)
	defer ttl.Stop()

	for name, store := range map[string]Store{"memory": NewMemoryStore(), "ttl": ttl} {
		t.Run(name, func(t *testing.T) {
			st, err := store.Get(context.Background(), "94770000000@s.whatsapp.net")
			require.NoError(t, err)
			assert.Equal(t, NewUserState(), st)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestStoresOverwriteState(t *testing.T) {
	ttl := NewTTLStore(time.Minute, 0)
	defer ttl.Stop()

	for name, store := range map[string]Store{"memory": NewMemoryStore(), "ttl": ttl} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			id := "94771111111@s.whatsapp.net"

			require.NoError(t, store.Set(ctx, id, WelcomeState()))
			require.NoError(t, store.Set(ctx, id, UserState{Step: StepDigital, Page: 3, Company: CompanyDigital}))

			st, err := store.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, UserState{Step: StepDigital, Page: 3, Company: CompanyDigital}, st)
			assert.Equal(t, 1, store.Len())
		})
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("user-%d", i)
			_ = store.Set(ctx, id, UserState{Step: StepSoftware, Page: 1 + i%3, Company: CompanySoftware})
			_, _ = store.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, store.Len())
}

func TestTTLStoreForgetsIdleUsers(t *testing.T) {
	store := NewTTLStore(20*time.Millisecond, 0)
	defer store.Stop()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "idle", WelcomeState()))

	assert.Eventually(t, func() bool {
		st, err := store.Get(ctx, "idle")
		return err == nil && st == NewUserState()
	}, time.Second, 10*time.Millisecond)
}

func TestTTLStoreCapacity(t *testing.T) {
	store := NewTTLStore(time.Minute, 2)
	defer store.Stop()

	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Set(ctx, id, WelcomeState()))
	}

	assert.Equal(t, 2, store.Len())
}
