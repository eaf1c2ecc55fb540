// Package update provides non-blocking update checking for the CLI.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hollowpine/table-cli/internal/debug"
)

const (
	// CheckInterval is the minimum time between update checks.
	CheckInterval = 24 * time.Hour
	// GitHubRepo is the repository to check for releases.
	GitHubRepo = "hollowpine/table-cli"
	// cacheFile stores the last check time and version, under the user
	// cache dir.
	cacheFile = "update-check.json"
)

type cache struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
}

// HTTPDoer abstracts an HTTP client for testability.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Checker encapsulates update check configuration.
type Checker struct {
	httpClient    HTTPDoer
	cacheDir      func() (string, error)
	cachePath     string
	checkInterval time.Duration
	now           func() time.Time
	repo          string
	logger        *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// NewChecker creates a Checker with defaults and applies options.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		httpClient:    http.DefaultClient,
		cacheDir:      os.UserCacheDir,
		checkInterval: CheckInterval,
		now:           time.Now,
		repo:          GitHubRepo,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Checker) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithCachePath overrides the full cache path.
func WithCachePath(path string) Option {
	return func(c *Checker) {
		c.cachePath = path
	}
}

// WithNow overrides the clock.
func WithNow(fn func() time.Time) Option {
	return func(c *Checker) {
		if fn != nil {
			c.now = fn
		}
	}
}

// WithCheckInterval overrides the check interval.
func WithCheckInterval(interval time.Duration) Option {
	return func(c *Checker) {
		if interval > 0 {
			c.checkInterval = interval
		}
	}
}

// WithRepo overrides the GitHub repo slug.
func WithRepo(repo string) Option {
	return func(c *Checker) {
		if strings.TrimSpace(repo) != "" {
			c.repo = repo
		}
	}
}

// WithDebugOutput wraps the HTTP client so every GitHub round trip is
// logged to w. Apply after WithHTTPClient.
func WithDebugOutput(w io.Writer) Option {
	return func(c *Checker) {
		base, ok := c.httpClient.(*http.Client)
		if !ok {
			base = &http.Client{}
		}
		clone := *base
		clone.Transport = debug.NewTransport(clone.Transport, w)
		c.httpClient = &clone
	}
}

// Check checks for updates and returns a message if a newer version exists.
func (c *Checker) Check(ctx context.Context, currentVersion string) (string, error) {
	cachePath, err := c.resolveCachePath()
	if err != nil {
		return "", fmt.Errorf("update check cache path: %w", err)
	}

	cached, err := c.loadCache(cachePath)
	if err != nil {
		return "", fmt.Errorf("update check load cache: %w", err)
	}

	if !c.shouldCheck(cached.LatestVersion, cached.LastCheck) {
		if isNewer(currentVersion, cached.LatestVersion) {
			return updateMessage(cached.LatestVersion, currentVersion, c.repo), nil
		}
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	latest, err := c.fetchLatestRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("update check fetch latest release: %w", err)
	}

	if err := c.saveCache(cachePath, cache{LastCheck: c.now(), LatestVersion: latest}); err != nil {
		c.logger.Debug("failed to save update cache", "error", err)
	}

	if isNewer(currentVersion, latest) {
		return updateMessage(latest, currentVersion, c.repo), nil
	}
	return "", nil
}

// Check checks for updates and returns a message if a newer version exists.
// This is non-blocking and logs failures at debug level. When the
// context carries debug mode, the GitHub round trip is logged to stderr.
func Check(ctx context.Context, currentVersion string) string {
	var opts []Option
	if debug.IsDebug(ctx) {
		opts = append(opts, WithDebugOutput(os.Stderr))
	}
	checker := NewChecker(opts...)
	msg, err := checker.Check(ctx, currentVersion)
	if err != nil {
		checker.logger.Debug("update check failed", "error", err)
	}
	return msg
}

func (c *Checker) resolveCachePath() (string, error) {
	if strings.TrimSpace(c.cachePath) != "" {
		return c.cachePath, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "table-cli", cacheFile), nil
}

func (c *Checker) loadCache(path string) (cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache{}, nil
		}
		return cache{}, err
	}
	var parsed cache
	if err := json.Unmarshal(data, &parsed); err != nil {
		return cache{}, err
	}
	return parsed, nil
}

func (c *Checker) saveCache(path string, value cache) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Checker) shouldCheck(cachedVersion string, lastCheck time.Time) bool {
	if cachedVersion == "" || lastCheck.IsZero() {
		return true
	}
	return c.now().Sub(lastCheck) > c.checkInterval
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", c.repo)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

func updateMessage(latest, current, repo string) string {
	return fmt.Sprintf("A new version is available: %s (current: %s)\nRun: go install github.com/%s/cmd/tbl@latest", latest, current, repo)
}

func isNewer(current, latest string) bool {
	// Skip check for dev versions
	if current == "dev" || current == "unknown" || current == "" {
		return false
	}

	currentParts := strings.Split(current, ".")
	latestParts := strings.Split(latest, ".")

	for i := 0; i < len(currentParts) && i < len(latestParts); i++ {
		cur, _ := strconv.Atoi(currentParts[i])
		lat, _ := strconv.Atoi(latestParts[i])
		if lat > cur {
			return true
		}
		if lat < cur {
			return false
		}
	}
	return len(latestParts) > len(currentParts)
}
