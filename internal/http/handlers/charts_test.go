package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/fpl-data-explorer/internal/testutil"
)

func serveChart(fn http.HandlerFunc, path string, kv ...string) *httptest.ResponseRecorder {
	req := testutil.WithURLParams(httptest.NewRequest(http.MethodGet, path, nil), kv...)
	return testutil.ServeRequest(fn, req)
}

func TestPlayerChartRendersSVG(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, kind := range []string{"points", "cumulative", "minutes", "expected"} {
		rr := serveChart(h.PlayerChart, "/charts/players/3/"+kind+".svg", "id", "3", "kind", kind)
		testutil.AssertStatus(t, rr, http.StatusOK)
		if rr.Header().Get("Content-Type") != svgContentType {
			t.Fatalf("%s: expected svg content type", kind)
		}
		if !strings.Contains(rr.Body.String(), "<svg") {
			t.Fatalf("%s: expected svg body", kind)
		}
	}
}

func TestPlayerChartNotEnoughDataIsNoContent(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := serveChart(h.PlayerChart, "/charts/players/4/points.svg", "id", "4", "kind", "points")
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestPlayerChartErrors(t *testing.T) {
	h := newTestHandler(t, nil)

	testutil.AssertStatus(t, serveChart(h.PlayerChart, "/charts/players/3/radar.svg", "id", "3", "kind", "radar"), http.StatusNotFound)
	testutil.AssertStatus(t, serveChart(h.PlayerChart, "/charts/players/x/points.svg", "id", "x", "kind", "points"), http.StatusBadRequest)
	testutil.AssertStatus(t, serveChart(h.PlayerChart, "/charts/players/99/points.svg", "id", "99", "kind", "points"), http.StatusNotFound)
}

func TestLeagueChart(t *testing.T) {
	h := newTestHandler(t, nil)

	for _, kind := range []string{"distribution", "xg", "xa", "cost"} {
		rr := serveChart(h.LeagueChart, "/charts/league/"+kind+".svg", "kind", kind)
		testutil.AssertStatus(t, rr, http.StatusOK)
		if !strings.Contains(rr.Body.String(), "<svg") {
			t.Fatalf("%s: expected svg body", kind)
		}
	}
	testutil.AssertStatus(t, serveChart(h.LeagueChart, "/charts/league/pie.svg", "kind", "pie"), http.StatusNotFound)
}

func TestLeagueChartWithoutPlayersIsNoContent(t *testing.T) {
	h := NewHandler(testutil.NewPlayerService(nil, nil), nil, nil, nil, nil)

	rr := serveChart(h.LeagueChart, "/charts/league/xg.svg", "kind", "xg")
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestChartKindTrimsExtension(t *testing.T) {
	req := testutil.WithURLParams(httptest.NewRequest(http.MethodGet, "/", nil), "kind", "xg.svg")
	if got := chartKind(req); got != "xg" {
		t.Fatalf("expected xg, got %q", got)
	}
}
