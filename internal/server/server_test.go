package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/config"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
	"github.com/preston-bernstein/fpl-data-explorer/internal/metrics"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers/fixture"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers/fpl"
	"github.com/preston-bernstein/fpl-data-explorer/internal/teststubs"
	"github.com/preston-bernstein/fpl-data-explorer/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "0",
		RefreshInterval: 5 * time.Millisecond,
		Metrics:         config.MetricsConfig{Enabled: false},
	}
}

func waitReady(t *testing.T, srv *Server) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !srv.poller.Status().IsReady() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for poller to load players")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServerServesHealthAndPlayers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &teststubs.StubProvider{
		Players: testutil.SamplePlayers(),
		Teams:   []teams.Team{testutil.SampleTeam(1, "Arsenal")},
		Summaries: map[int]players.Summary{
			3: testutil.SampleSummary(3, []fdr.Rating{1, 5}, []int{4, 8}),
		},
		Notify: make(chan struct{}),
	}

	srv, err := newServerWithProvider(testConfig(), nil, provider)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(context.Background()) }()

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}
	waitReady(t, srv)

	router := srv.Handler()

	healthRec := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, healthRec, http.StatusOK)

	playersRec := testutil.Serve(router, http.MethodGet, "/api/players", nil)
	testutil.AssertStatus(t, playersRec, http.StatusOK)
	var list struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(playersRec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode players response: %v", err)
	}
	if list.Count != 4 {
		t.Fatalf("expected 4 players, got %d", list.Count)
	}

	fixturesRec := testutil.Serve(router, http.MethodGet, "/api/players/3/fixtures", nil)
	testutil.AssertStatus(t, fixturesRec, http.StatusOK)

	teamsRec := testutil.Serve(router, http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, teamsRec, http.StatusOK)
}

func TestServerServesDashboardWithFixtureProvider(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := newServerWithProvider(testConfig(), nil, fixture.New())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(context.Background()) }()
	waitReady(t, srv)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/?player=1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/analysis?section=expected", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, err := newServerWithProvider(testConfig(), nil, testutil.UnavailableProvider{})
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	if err := srv.poller.Refresh(ctx); err == nil {
		t.Fatalf("expected refresh error from failing provider")
	}

	router := srv.Handler()
	rr := testutil.Serve(router, http.MethodGet, "/api/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var list struct {
		Count int `json:"count"`
	}
	testutil.DecodeJSON(t, rr, &list)
	if list.Count != 0 {
		t.Fatalf("expected no players when provider errors, got %d", list.Count)
	}

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)
}

func TestAdminRouteMountedWithToken(t *testing.T) {
	cfg := testConfig()
	cfg.AdminToken = "secret"
	provider := &teststubs.StubProvider{Players: testutil.SamplePlayers()}

	srv, err := newServerWithProvider(cfg, nil, provider)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got := srv.playersService.Players(); len(got) != 4 {
		t.Fatalf("expected refresh to load players, got %d", len(got))
	}
}

func TestAdminRouteAbsentWithoutToken(t *testing.T) {
	srv, err := newServerWithProvider(testConfig(), nil, &teststubs.StubProvider{})
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: "unknown"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for unknown provider")
	}
	if _, ok := selectProvider(config.Config{}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider by default")
	}
	live := selectProvider(config.Config{Provider: "FPL", Fpl: config.FplConfig{BaseURL: "http://example.com"}}, nil)
	if _, ok := live.(*fpl.Client); !ok {
		t.Fatalf("expected fpl client, got %T", live)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" FPL ", nil); got != "fpl" {
		t.Fatalf("expected fpl, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected type-derived name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestProviderFactoryBuilds(t *testing.T) {
	factory := newProviderFactory(nil, metrics.NewRecorder())
	if prov := factory.build(config.Config{Provider: "fixture"}); prov == nil {
		t.Fatalf("expected fixture provider")
	}

	live := factory.build(config.Config{Provider: "fpl", Fpl: config.FplConfig{MinInterval: time.Millisecond}})
	closer, ok := live.(interface{ Close() })
	if !ok {
		t.Fatalf("expected closable provider chain")
	}
	closer.Close()
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Provider = "fixture"
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	closed := 0
	srv.cacheClose = func() error { closed++; return nil }
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if closed != 1 {
		t.Fatalf("expected summary cache closed once, got %d", closed)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}
	logger, buf := testutil.NewBufferLogger()

	srv := newServerWithDeps(config.Config{}, logger, httpSrv, p)
	srv.cacheClose = func() error { return errors.New("close failure") }
	srv.gracefulShutdown()

	if p.StopCalls != 1 || httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected stop and shutdown despite errors")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected shutdown errors logged")
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, &testutil.ErrHTTPServer{}, &testutil.StubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
