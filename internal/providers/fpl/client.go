package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
)

// Config controls how the client reaches the FPL API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches bootstrap, fixture and element-summary payloads from the
// public FPL API and maps them to domain rows.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time

	mu        sync.RWMutex
	teamNames map[int]string
}

// NewClient constructs an FPL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchPlayers returns the transformed player table. Each player's
// NextDifficulty is taken from their club's next unfinished fixture.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	boot, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	var upcoming []fixtureResponse
	if err := c.getJSON(ctx, "/fixtures/?future=1", &upcoming); err != nil {
		return nil, err
	}

	return mapPlayers(boot, nextDifficultyByTeam(upcoming)), nil
}

// FetchTeams returns the clubs listed in bootstrap-static.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	boot, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(boot.Teams))
	for _, t := range boot.Teams {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// FetchPlayerSummary returns the upcoming fixtures and past gameweeks of one player.
func (c *Client) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	if playerID <= 0 {
		return players.Summary{}, fmt.Errorf("%s: %w", providerName, providers.ErrPlayerNotFound)
	}

	names, err := c.teamNameLookup(ctx)
	if err != nil {
		return players.Summary{}, err
	}

	var payload elementSummaryResponse
	path := "/element-summary/" + strconv.Itoa(playerID) + "/"
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return players.Summary{}, err
	}

	return mapSummary(playerID, payload, names), nil
}

func (c *Client) bootstrap(ctx context.Context) (bootstrapResponse, error) {
	var boot bootstrapResponse
	if err := c.getJSON(ctx, "/bootstrap-static/", &boot); err != nil {
		return bootstrapResponse{}, err
	}
	c.rememberTeams(boot.Teams)
	return boot, nil
}

func (c *Client) rememberTeams(items []teamResponse) {
	names := make(map[int]string, len(items))
	for _, t := range items {
		names[t.ID] = t.Name
	}
	c.mu.Lock()
	c.teamNames = names
	c.mu.Unlock()
}

// teamNameLookup returns cached team names, loading bootstrap-static on first use.
func (c *Client) teamNameLookup(ctx context.Context) (map[int]string, error) {
	c.mu.RLock()
	names := c.teamNames
	c.mu.RUnlock()
	if names != nil {
		return names, nil
	}
	if _, err := c.bootstrap(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.teamNames, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "fpl: rate limited",
		}
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %s: %w", providerName, path, providers.ErrPlayerNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s: unexpected status %d: %s", providerName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}
