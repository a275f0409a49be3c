package fpl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
)

const bootstrapBody = `{
	"elements": [
		{"id": 2, "web_name": "Saka", "team": 1, "element_type": 3, "total_points": 180,
		 "now_cost": 95, "expected_goals": "10.50", "expected_assists": "8.25",
		 "expected_goals_conceded": "30.1", "goals_scored": 12, "assists": 9,
		 "minutes": 2900, "selected_by_percent": "41.2", "form": "6.5"},
		{"id": 1, "web_name": "Raya", "team": 1, "element_type": 1, "total_points": 140,
		 "now_cost": 55, "expected_goals": "0.00", "expected_assists": "0.10",
		 "expected_goals_conceded": "28.0", "minutes": 3400,
		 "selected_by_percent": "15.0", "form": "3.0"}
	],
	"teams": [
		{"id": 1, "name": "Arsenal", "short_name": "ARS", "strength": 5},
		{"id": 2, "name": "Aston Villa", "short_name": "AVL", "strength": 4}
	],
	"element_types": [
		{"id": 1, "singular_name_short": "GKP"},
		{"id": 3, "singular_name_short": "MID"}
	]
}`

const fixturesBody = `[
	{"id": 10, "event": 2, "team_h": 2, "team_a": 1, "team_h_difficulty": 4, "team_a_difficulty": 3},
	{"id": 11, "event": 3, "team_h": 1, "team_a": 2, "team_h_difficulty": 2, "team_a_difficulty": 5}
]`

const summaryBody = `{
	"fixtures": [
		{"id": 10, "event": 2, "kickoff_time": "2024-08-24T14:00:00Z", "team_h": 2, "team_a": 1, "is_home": false, "difficulty": 3},
		{"id": 11, "event": 3, "kickoff_time": "2024-08-31T14:00:00Z", "team_h": 1, "team_a": 2, "is_home": true, "difficulty": 2}
	],
	"history": [
		{"round": 1, "kickoff_time": "2024-08-17T14:00:00Z", "opponent_team": 2, "was_home": true,
		 "total_points": 9, "minutes": 90, "goals_scored": 1, "assists": 1,
		 "expected_goals": "0.45", "expected_assists": "0.30", "value": 100}
	]
}`

func newFPLServer(t *testing.T, routes map[string]string) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestFetchPlayersMapsBootstrap(t *testing.T) {
	srv, _ := newFPLServer(t, map[string]string{
		"/bootstrap-static/": bootstrapBody,
		"/fixtures/":         fixturesBody,
	})
	client := NewClient(Config{BaseURL: srv.URL + "/"})

	items, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 players, got %d", len(items))
	}
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("expected players ordered by id, got %d,%d", items[0].ID, items[1].ID)
	}

	saka := items[1]
	if saka.Name != "Saka" || saka.Team != "Arsenal" || saka.Position != "MID" {
		t.Fatalf("unexpected identity fields %+v", saka)
	}
	if saka.Cost != 9.5 {
		t.Fatalf("expected cost 9.5, got %v", saka.Cost)
	}
	if saka.ExpectedGoals != 10.5 || saka.ExpectedAssists != 8.25 || saka.ExpectedGoalsConceded != 30.1 {
		t.Fatalf("unexpected expected stats %+v", saka)
	}
	if saka.NextDifficulty != 3 {
		t.Fatalf("expected next FDR 3 from gameweek 2 away fixture, got %d", saka.NextDifficulty)
	}
	if items[0].Position != "GKP" || items[0].GoalsScored != 0 {
		t.Fatalf("unexpected goalkeeper %+v", items[0])
	}
}

func TestFetchTeams(t *testing.T) {
	srv, _ := newFPLServer(t, map[string]string{"/bootstrap-static/": bootstrapBody})
	client := NewClient(Config{BaseURL: srv.URL})

	items, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 || items[1].ShortName != "AVL" || items[1].Strength != 4 {
		t.Fatalf("unexpected teams %+v", items)
	}
}

func TestFetchPlayerSummaryResolvesOpponents(t *testing.T) {
	srv, paths := newFPLServer(t, map[string]string{
		"/bootstrap-static/":  bootstrapBody,
		"/element-summary/2/": summaryBody,
	})
	client := NewClient(Config{BaseURL: srv.URL})

	summary, err := client.FetchPlayerSummary(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.PlayerID != 2 || len(summary.Fixtures) != 2 || len(summary.History) != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Fixtures[0].Opponent != "Aston Villa" || summary.Fixtures[0].IsHome {
		t.Fatalf("expected away fixture at Aston Villa, got %+v", summary.Fixtures[0])
	}
	if summary.Fixtures[1].Opponent != "Aston Villa" || !summary.Fixtures[1].IsHome {
		t.Fatalf("expected home fixture against Aston Villa, got %+v", summary.Fixtures[1])
	}
	if summary.Fixtures[1].Difficulty != 2 || summary.Fixtures[1].Gameweek != 3 {
		t.Fatalf("unexpected fixture mapping %+v", summary.Fixtures[1])
	}
	h := summary.History[0]
	if h.Points != 9 || h.ExpectedGoals != 0.45 || h.Cost != 10 || h.Opponent != "Aston Villa" {
		t.Fatalf("unexpected history mapping %+v", h)
	}

	// team names are cached after the first bootstrap load
	if _, err := client.FetchPlayerSummary(context.Background(), 2); err != nil {
		t.Fatalf("expected no error on second call, got %v", err)
	}
	bootstrapCalls := 0
	for _, p := range *paths {
		if p == "/bootstrap-static/" {
			bootstrapCalls++
		}
	}
	if bootstrapCalls != 1 {
		t.Fatalf("expected bootstrap fetched once, got %d", bootstrapCalls)
	}
}

func TestFetchPlayerSummaryNotFound(t *testing.T) {
	srv, _ := newFPLServer(t, map[string]string{"/bootstrap-static/": bootstrapBody})
	client := NewClient(Config{BaseURL: srv.URL})

	_, err := client.FetchPlayerSummary(context.Background(), 999)
	if !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := client.FetchPlayerSummary(context.Background(), 0); !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound for id 0, got %v", err)
	}
}

func TestFetchReturnsRateLimitError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		h := make(http.Header)
		h.Set("Retry-After", "7")
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
			Header:     h,
		}, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeams(context.Background())
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 7*time.Second || rlErr.StatusCode != http.StatusTooManyRequests || rlErr.Provider != "fpl" {
		t.Fatalf("unexpected rate limit error %+v", rlErr)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchPlayers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{bad json")),
			Header:     make(http.Header),
		}, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchTeams(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchPropagatesTransportError(t *testing.T) {
	want := errors.New("dial failed")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		_ = req
		return nil, want
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchPlayerSummary(context.Background(), 1); !errors.Is(err, want) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{Timeout: 3 * time.Second})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
