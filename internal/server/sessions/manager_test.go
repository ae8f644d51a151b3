package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_StartAndLookup(t *testing.T) {
	m := NewManager(NewMemoryStore(), 24*time.Hour)

	token, err := m.Start(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, ok := m.Lookup(token)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestManager_Start_UniqueTokens(t *testing.T) {
	m := NewManager(NewMemoryStore(), 24*time.Hour)

	t1, err := m.Start(1)
	require.NoError(t, err)
	t2, err := m.Start(1)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestManager_Lookup_UnknownToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), 24*time.Hour)

	_, ok := m.Lookup("no-such-token")
	assert.False(t, ok)
}

func TestManager_Destroy_Idempotent(t *testing.T) {
	m := NewManager(NewMemoryStore(), 24*time.Hour)

	token, err := m.Start(7)
	require.NoError(t, err)

	m.Destroy(token)
	_, ok := m.Lookup(token)
	assert.False(t, ok)

	// destroying again is still a success
	m.Destroy(token)
	_, ok = m.Lookup(token)
	assert.False(t, ok)
}

func TestManager_Lookup_Expired(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, -time.Minute)

	token, err := m.Start(7)
	require.NoError(t, err)

	_, ok := m.Lookup(token)
	assert.False(t, ok)

	// lazy expiry removed the row from the store
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestManager_Janitor_SweepsExpired(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, -time.Minute)

	token, err := m.Start(7)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Janitor(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, ok := store.Get(token)
		return !ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	m := NewManager(NewMemoryStore(), 24*time.Hour)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(id int64) {
			defer func() { done <- struct{}{} }()
			token, err := m.Start(id)
			if err != nil {
				t.Error(err)
				return
			}
			for j := 0; j < 100; j++ {
				m.Lookup(token)
			}
			m.Destroy(token)
		}(int64(i))
	}

	for i := 0; i < 8; i++ {
		<-done
	}
}
