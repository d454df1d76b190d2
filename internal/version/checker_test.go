package version

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// releaseServer stands in for the GitHub releases endpoint and counts
// how often it is hit.
func releaseServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	orig := latestReleaseURL
	latestReleaseURL = srv.URL
	t.Cleanup(func() { latestReleaseURL = orig })

	return srv, &hits
}

func TestCheckFindsUpdate(t *testing.T) {
	releaseServer(t, http.StatusOK,
		`{"tag_name": "v1.5.0", "html_url": "https://github.com/polkashop/polka/releases/tag/v1.5.0"}`)

	result := Check("v1.0.0")
	if result.Error != nil {
		t.Fatalf("Check failed: %v", result.Error)
	}
	if !result.HasUpdate {
		t.Error("v1.5.0 should count as an update over v1.0.0")
	}
	if result.LatestVersion != "v1.5.0" {
		t.Errorf("LatestVersion = %q, want v1.5.0", result.LatestVersion)
	}
	if result.UpdateURL != "https://github.com/polkashop/polka/releases/tag/v1.5.0" {
		t.Errorf("UpdateURL = %q", result.UpdateURL)
	}
}

func TestCheckUpToDate(t *testing.T) {
	releaseServer(t, http.StatusOK, `{"tag_name": "v1.0.0"}`)

	result := Check("v1.0.0")
	if result.Error != nil {
		t.Fatalf("Check failed: %v", result.Error)
	}
	if result.HasUpdate {
		t.Error("same version must not report an update")
	}
}

func TestCheckServerError(t *testing.T) {
	releaseServer(t, http.StatusNotFound, `{"message": "Not Found"}`)

	result := Check("v1.0.0")
	if result.Error == nil {
		t.Fatal("expected an error for a 404 response")
	}
	if result.HasUpdate {
		t.Error("a failed check must not report an update")
	}
}

func TestCheckSkipsDevBuilds(t *testing.T) {
	_, hits := releaseServer(t, http.StatusOK, `{"tag_name": "v9.9.9"}`)

	for _, v := range []string{"", "unknown", "dev", "devel", "dev-abc123"} {
		result := Check(v)
		if result.Error != nil {
			t.Errorf("Check(%q) errored: %v", v, result.Error)
		}
		if result.LatestVersion != "" || result.HasUpdate {
			t.Errorf("Check(%q) should come back empty, got %+v", v, result)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("dev builds hit the network %d times", hits.Load())
	}
}

func TestCheckAsyncUsesFreshCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, hits := releaseServer(t, http.StatusOK, `{"tag_name": "v9.9.9"}`)

	entry := &CacheEntry{
		LatestVersion:  "v1.5.0",
		CurrentVersion: "v1.0.0",
		CheckedAt:      time.Now(),
		HasUpdate:      true,
	}
	if err := SaveCache(entry); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	msg := CheckAsync("v1.0.0")()
	update, ok := msg.(UpdateAvailableMsg)
	if !ok {
		t.Fatalf("got %T, want UpdateAvailableMsg", msg)
	}
	if update.LatestVersion != "v1.5.0" {
		t.Errorf("LatestVersion = %q, want the cached v1.5.0", update.LatestVersion)
	}
	if update.UpdateCommand != UpdateCommand {
		t.Errorf("UpdateCommand = %q", update.UpdateCommand)
	}
	if hits.Load() != 0 {
		t.Errorf("fresh cache still hit the network %d times", hits.Load())
	}
}

func TestCheckAsyncFreshCacheUpToDate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	releaseServer(t, http.StatusOK, `{"tag_name": "v9.9.9"}`)

	entry := &CacheEntry{
		LatestVersion:  "v1.0.0",
		CurrentVersion: "v1.0.0",
		CheckedAt:      time.Now(),
		HasUpdate:      false,
	}
	if err := SaveCache(entry); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	if msg := CheckAsync("v1.0.0")(); msg != nil {
		t.Errorf("up-to-date cache should yield nil, got %T", msg)
	}
}

func TestCheckAsyncRefetchesExpiredCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, hits := releaseServer(t, http.StatusOK, `{"tag_name": "v2.0.0"}`)

	entry := &CacheEntry{
		LatestVersion:  "v1.5.0",
		CurrentVersion: "v1.0.0",
		CheckedAt:      time.Now().Add(-7 * time.Hour),
		HasUpdate:      true,
	}
	if err := SaveCache(entry); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	msg := CheckAsync("v1.0.0")()
	update, ok := msg.(UpdateAvailableMsg)
	if !ok {
		t.Fatalf("got %T, want UpdateAvailableMsg", msg)
	}
	if update.LatestVersion != "v2.0.0" {
		t.Errorf("LatestVersion = %q, want the refetched v2.0.0", update.LatestVersion)
	}
	if hits.Load() != 1 {
		t.Errorf("expired cache hit the network %d times, want 1", hits.Load())
	}

	// The refetched result replaces the stale entry on disk.
	fresh, err := LoadCache()
	if err != nil {
		t.Fatalf("LoadCache after refetch: %v", err)
	}
	if fresh.LatestVersion != "v2.0.0" || !IsCacheValid(fresh, "v1.0.0") {
		t.Errorf("cache not refreshed: %+v", fresh)
	}
}

func TestCheckAsyncIgnoresCacheForOtherVersion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, hits := releaseServer(t, http.StatusOK, `{"tag_name": "v1.5.0"}`)

	// Cache recorded while v1.0.0 was running; v1.5.0 is running now.
	entry := &CacheEntry{
		LatestVersion:  "v1.5.0",
		CurrentVersion: "v1.0.0",
		CheckedAt:      time.Now(),
		HasUpdate:      true,
	}
	if err := SaveCache(entry); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	if msg := CheckAsync("v1.5.0")(); msg != nil {
		t.Errorf("upgraded binary should re-check and find itself current, got %T", msg)
	}
	if hits.Load() != 1 {
		t.Errorf("version mismatch should force a re-check, got %d hits", hits.Load())
	}
}

func TestCheckAsyncSilentOnFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	releaseServer(t, http.StatusInternalServerError, ``)

	if msg := CheckAsync("v1.0.0")(); msg != nil {
		t.Errorf("a failed check must stay silent, got %T", msg)
	}
}

func TestCheckAsyncCorruptCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, hits := releaseServer(t, http.StatusOK, `{"tag_name": "v1.1.0"}`)

	// An unreadable cache file should fall through to a network fetch
	// instead of failing.
	if err := SaveCache(&CacheEntry{}); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}
	if err := os.WriteFile(cachePath(), []byte(`{corrupted`), 0644); err != nil {
		t.Fatalf("corrupting cache: %v", err)
	}

	msg := CheckAsync("v1.0.0")()
	if _, ok := msg.(UpdateAvailableMsg); !ok {
		t.Fatalf("got %T, want UpdateAvailableMsg after corrupt cache", msg)
	}
	if hits.Load() != 1 {
		t.Errorf("corrupt cache should force a fetch, got %d hits", hits.Load())
	}
}
