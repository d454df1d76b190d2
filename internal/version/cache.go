package version

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// cacheTTL is how long a release check result is reused before the
// GitHub API is consulted again.
const cacheTTL = 6 * time.Hour

// CacheEntry is the persisted result of the most recent release check.
type CacheEntry struct {
	LatestVersion  string    `json:"latest_version"`
	CurrentVersion string    `json:"current_version"`
	CheckedAt      time.Time `json:"checked_at"`
	HasUpdate      bool      `json:"has_update"`
}

// cachePath returns the location of the cache file, or "" when HOME is
// not set.
func cachePath() string {
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "polka", "version_cache.json")
}

// IsCacheValid reports whether entry can stand in for a fresh check of
// current. Entries expire after cacheTTL, and an entry recorded for a
// different running version is discarded so upgrades re-check
// immediately.
func IsCacheValid(entry *CacheEntry, current string) bool {
	if entry == nil {
		return false
	}
	if entry.CurrentVersion != current {
		return false
	}
	return time.Since(entry.CheckedAt) < cacheTTL
}

// LoadCache reads the cached check result from disk.
func LoadCache() (*CacheEntry, error) {
	path := cachePath()
	if path == "" {
		return nil, errors.New("home directory not set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveCache writes entry to disk, creating the config directory if it
// does not exist yet.
func SaveCache(entry *CacheEntry) error {
	path := cachePath()
	if path == "" {
		return errors.New("home directory not set")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
