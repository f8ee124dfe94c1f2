// Package security mantém um monitor leve de eventos de segurança em
// memória. Os eventos alimentam heurísticas de rate-limit por usuário
// sem tocar no banco; o buffer é perdido em restart.
package security

import (
	"log"
	"sync"
	"time"
)

type EventType string

const (
	EventFailedLogin        EventType = "failed_login"
	EventRateLimitExceeded  EventType = "rate_limit_exceeded"
	EventSuspiciousActivity EventType = "suspicious_activity"
)

const (
	maxBufferedEvents = 100

	loginWindow      = 15 * time.Minute
	loginMaxAttempts = 5

	operationWindow      = 1 * time.Minute
	operationMaxAttempts = 50
)

type Event struct {
	Type      EventType
	UserKey   string
	Details   string
	Timestamp time.Time
}

// Monitor guarda os últimos eventos em um buffer circular limitado e
// controla tentativas por usuário/ação. O clock é injetável para os
// testes controlarem o tempo.
type Monitor struct {
	mu       sync.Mutex
	events   []Event
	attempts map[string][]time.Time
	now      func() time.Time
}

// Default é o monitor compartilhado do processo.
var Default = NewMonitor()

func NewMonitor() *Monitor {
	return NewMonitorWithClock(time.Now)
}

func NewMonitorWithClock(now func() time.Time) *Monitor {
	if now == nil {
		now = time.Now
	}
	return &Monitor{
		attempts: make(map[string][]time.Time),
		now:      now,
	}
}

// Record adiciona um evento ao buffer, descartando o mais antigo quando cheio.
func (m *Monitor) Record(eventType EventType, userKey, details string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(eventType, userKey, details)
}

func (m *Monitor) record(eventType EventType, userKey, details string) {
	m.events = append(m.events, Event{
		Type:      eventType,
		UserKey:   userKey,
		Details:   details,
		Timestamp: m.now(),
	})
	if len(m.events) > maxBufferedEvents {
		m.events = m.events[len(m.events)-maxBufferedEvents:]
	}

	if eventType == EventSuspiciousActivity {
		log.Printf("[WARNING] 🚨 Atividade suspeita: user=%s details=%s", userKey, details)
	}
}

// AllowAction registra uma tentativa e verifica o limite da ação:
// login = 5 por 15 minutos, demais operações = 50 por minuto.
// Quando o limite estoura, um evento rate_limit_exceeded entra no buffer.
func (m *Monitor) AllowAction(userKey, action string) bool {
	window := operationWindow
	max := operationMaxAttempts
	if action == "login" {
		window = loginWindow
		max = loginMaxAttempts
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := userKey + "|" + action
	cutoff := m.now().Add(-window)

	kept := m.attempts[key][:0]
	for _, t := range m.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= max {
		m.attempts[key] = kept
		m.record(EventRateLimitExceeded, userKey, action)
		return false
	}

	m.attempts[key] = append(kept, m.now())
	return true
}

// RecentEvents devolve uma cópia dos eventos bufferizados (mais novo por último).
func (m *Monitor) RecentEvents() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}
