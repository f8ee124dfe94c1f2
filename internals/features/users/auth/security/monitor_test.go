package security

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorBufferCap(t *testing.T) {
	m := NewMonitor()
	for i := 0; i < 150; i++ {
		m.Record(EventFailedLogin, "user-1", fmt.Sprintf("tentativa-%d", i))
	}

	events := m.RecentEvents()
	require.Len(t, events, 100)
	// Os 50 primeiros foram descartados
	assert.Equal(t, "tentativa-50", events[0].Details)
	assert.Equal(t, "tentativa-149", events[99].Details)
}

func TestMonitorLoginRateLimit(t *testing.T) {
	current := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	m := NewMonitorWithClock(func() time.Time { return current })

	for i := 0; i < 5; i++ {
		require.True(t, m.AllowAction("alice", "login"), "tentativa %d deveria passar", i+1)
	}
	assert.False(t, m.AllowAction("alice", "login"))

	// Outro usuário não é afetado
	assert.True(t, m.AllowAction("bob", "login"))

	// O estouro entra no buffer de eventos
	events := m.RecentEvents()
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, EventRateLimitExceeded, last.Type)
	assert.Equal(t, "alice", last.UserKey)

	// Depois da janela de 15 minutos, libera de novo
	current = current.Add(16 * time.Minute)
	assert.True(t, m.AllowAction("alice", "login"))
}

func TestMonitorOperationRateLimit(t *testing.T) {
	current := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	m := NewMonitorWithClock(func() time.Time { return current })

	for i := 0; i < 50; i++ {
		require.True(t, m.AllowAction("alice", "bill_update"))
	}
	assert.False(t, m.AllowAction("alice", "bill_update"))

	// Ações diferentes têm contadores independentes
	assert.True(t, m.AllowAction("alice", "supplier_update"))

	current = current.Add(2 * time.Minute)
	assert.True(t, m.AllowAction("alice", "bill_update"))
}
