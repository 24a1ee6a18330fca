package notifier

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DedupeStore suppresses repeat reminders for the same host+version+platform
// within a TTL. It is an optional bolt-on at the notifier boundary: the
// evaluation core stays stateless and none of the adapter contracts change.
type DedupeStore struct {
	db     *sql.DB
	ttl    time.Duration
	logger zerolog.Logger
}

// NewDedupeStore opens (creating if needed) the dedupe database
func NewDedupeStore(cfg config.DedupeConfig, logger zerolog.Logger) (*DedupeStore, error) {
	storeLogger := logger.With().Str("component", "DedupeStore").Logger()

	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create dedupe database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", cfg.DBPath, err)
	}

	store := &DedupeStore{
		db:     dbInstance,
		ttl:    time.Duration(cfg.TTLHours) * time.Hour,
		logger: storeLogger,
	}

	if err := store.initSchema(); err != nil {
		_ = dbInstance.Close()
		return nil, fmt.Errorf("failed to initialize dedupe schema: %w", err)
	}

	storeLogger.Info().Str("db_path", cfg.DBPath).Dur("ttl", store.ttl).Msg("Dedupe store initialized")
	return store, nil
}

// Close closes the database connection
func (s *DedupeStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *DedupeStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS notified_hosts (
		dedupe_key TEXT PRIMARY KEY,
		hardware_serial TEXT NOT NULL,
		observed_version TEXT NOT NULL,
		platform TEXT NOT NULL,
		notified_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

func dedupeKey(event models.NotificationEvent) string {
	return fmt.Sprintf("%s|%s|%s", event.HardwareSerial, event.ObservedVersion, event.Platform)
}

// AlreadyNotified reports whether an identical reminder was delivered within
// the TTL. Expired entries are pruned on the way.
func (s *DedupeStore) AlreadyNotified(event models.NotificationEvent) (bool, error) {
	cutoff := time.Now().Add(-s.ttl)

	if _, err := s.db.Exec(`DELETE FROM notified_hosts WHERE notified_at < ?`, cutoff); err != nil {
		return false, fmt.Errorf("failed to prune expired dedupe entries: %w", err)
	}

	var notifiedAt time.Time
	err := s.db.QueryRow(
		`SELECT notified_at FROM notified_hosts WHERE dedupe_key = ?`, dedupeKey(event),
	).Scan(&notifiedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query dedupe entry: %w", err)
	}
	return true, nil
}

// MarkNotified records a delivered reminder
func (s *DedupeStore) MarkNotified(event models.NotificationEvent) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO notified_hosts (dedupe_key, hardware_serial, observed_version, platform, notified_at) VALUES (?, ?, ?, ?, ?)`,
		dedupeKey(event), event.HardwareSerial, event.ObservedVersion, event.Platform.String(), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to record dedupe entry: %w", err)
	}
	return nil
}
