package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// latestReleaseURL is a var so tests can point the checker at a local
// server.
var latestReleaseURL = "https://api.github.com/repos/polkashop/polka/releases/latest"

const checkTimeout = 3 * time.Second

// UpdateCommand installs the latest release.
const UpdateCommand = "go install github.com/polkashop/polka@latest"

// CheckResult describes the outcome of a release check.
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	UpdateURL      string
	HasUpdate      bool
	Error          error
}

// UpdateAvailableMsg is delivered to the program when a newer release
// than the running one has been published.
type UpdateAvailableMsg struct {
	CurrentVersion string
	LatestVersion  string
	UpdateCommand  string
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// isDevVersion reports whether v identifies a development build.
// Development builds are never compared against published releases.
func isDevVersion(v string) bool {
	if v == "" || v == "unknown" {
		return true
	}
	return strings.HasPrefix(v, "dev")
}

// Check queries GitHub for the latest published release and compares it
// against current. Development builds skip the network entirely and
// come back empty.
func Check(current string) CheckResult {
	result := CheckResult{CurrentVersion: current}
	if isDevVersion(current) {
		return result
	}

	client := &http.Client{Timeout: checkTimeout}
	resp, err := client.Get(latestReleaseURL)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("release check returned %d", resp.StatusCode)
		return result
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		result.Error = err
		return result
	}

	result.LatestVersion = release.TagName
	result.UpdateURL = release.HTMLURL
	result.HasUpdate = isNewer(release.TagName, current)
	return result
}

// CheckAsync returns a command that looks for a newer release in the
// background. Results are cached on disk for cacheTTL so the GitHub API
// is consulted at most a few times a day. The command yields an
// UpdateAvailableMsg when an update exists and nil otherwise; failures
// stay silent so a flaky network never disturbs the UI.
func CheckAsync(current string) tea.Cmd {
	return func() tea.Msg {
		if isDevVersion(current) {
			return nil
		}

		if entry, err := LoadCache(); err == nil && IsCacheValid(entry, current) {
			if !entry.HasUpdate {
				return nil
			}
			return UpdateAvailableMsg{
				CurrentVersion: current,
				LatestVersion:  entry.LatestVersion,
				UpdateCommand:  UpdateCommand,
			}
		}

		result := Check(current)
		if result.Error != nil || result.LatestVersion == "" {
			return nil
		}

		// Cache write failures are not worth surfacing; the next run
		// simply checks again.
		_ = SaveCache(&CacheEntry{
			LatestVersion:  result.LatestVersion,
			CurrentVersion: current,
			CheckedAt:      time.Now(),
			HasUpdate:      result.HasUpdate,
		})

		if !result.HasUpdate {
			return nil
		}
		return UpdateAvailableMsg{
			CurrentVersion: current,
			LatestVersion:  result.LatestVersion,
			UpdateCommand:  UpdateCommand,
		}
	}
}
