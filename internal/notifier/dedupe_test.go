package notifier

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDedupeStore(t *testing.T, ttlHours int) *DedupeStore {
	t.Helper()
	store, err := NewDedupeStore(config.DedupeConfig{
		DBPath:   filepath.Join(t.TempDir(), "notified.db"),
		Enabled:  true,
		TTLHours: ttlHours,
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func staleEvent() models.NotificationEvent {
	return models.NotificationEvent{
		Contact:         models.Contact{Email: "sully@example.com", HardwareSerial: "C02DEF"},
		HardwareSerial:  "C02DEF",
		ObservedVersion: "14.4",
		Platform:        models.PlatformMacOS,
	}
}

func TestDedupeStore_SuppressesWithinTTL(t *testing.T) {
	store := newTestDedupeStore(t, 24)
	event := staleEvent()

	seen, err := store.AlreadyNotified(event)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, store.MarkNotified(event))

	seen, err = store.AlreadyNotified(event)
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestDedupeStore_KeyIncludesVersion(t *testing.T) {
	store := newTestDedupeStore(t, 24)
	require.NoError(t, store.MarkNotified(staleEvent()))

	// Same host, different observed version: a new reminder is due
	newVersion := staleEvent()
	newVersion.ObservedVersion = "14.4.1"

	seen, err := store.AlreadyNotified(newVersion)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestDedupeStore_ExpiredEntriesArePruned(t *testing.T) {
	store := newTestDedupeStore(t, 24)
	event := staleEvent()
	require.NoError(t, store.MarkNotified(event))

	// Backdate the entry beyond the TTL
	_, err := store.db.Exec(`UPDATE notified_hosts SET notified_at = ?`, time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	seen, err := store.AlreadyNotified(event)
	require.NoError(t, err)
	assert.False(t, seen)
}
