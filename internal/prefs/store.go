// Package prefs persists the visitor's last chosen amount and payment method.
//
// The store is deliberately forgiving: a missing or unreadable file means no
// stored preferences, and write failures are swallowed so a full disk or a
// read-only home directory degrades to "preferences not remembered" without
// ever blocking the donation flow.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// Store reads and writes the visitor's donation preferences.
type Store interface {
	// Load returns the stored preferences, or ok=false when none exist.
	Load() (p models.Preferences, ok bool)
	// Save overwrites the stored preferences. It never fails observably.
	Save(p models.Preferences)
}

// storedPrefs is the on-disk layout. The amount is the raw text as typed,
// valid or not.
type storedPrefs struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
}

// FileStore persists preferences as a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads preferences from disk. Any failure is treated as absence.
func (s *FileStore) Load() (models.Preferences, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn().Err(err).Str("path", s.path).Msg("Failed to read preferences")
		}
		return models.Preferences{}, false
	}

	var stored storedPrefs
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Log.Warn().Err(err).Str("path", s.path).Msg("Ignoring corrupt preferences file")
		return models.Preferences{}, false
	}

	return models.Preferences{
		Amount: stored.Amount,
		Method: models.PaymentMethod(stored.Method),
	}, true
}

// Save writes preferences to disk, swallowing any error.
func (s *FileStore) Save(p models.Preferences) {
	data, err := json.Marshal(storedPrefs{
		Amount: p.Amount,
		Method: string(p.Method),
	})
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to encode preferences")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.Log.Warn().Err(err).Str("path", s.path).Msg("Failed to create preferences directory")
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logger.Log.Warn().Err(err).Str("path", s.path).Msg("Failed to write preferences")
	}
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	prefs models.Preferences
	set   bool
}

// Load returns the last saved preferences.
func (s *MemStore) Load() (models.Preferences, bool) {
	return s.prefs, s.set
}

// Save records the preferences in memory.
func (s *MemStore) Save(p models.Preferences) {
	s.prefs = p
	s.set = true
}
