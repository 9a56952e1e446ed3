package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/internal/fixtures"
	"github.com/katalvlaran/cubenet/portal"
	"github.com/katalvlaran/cubenet/server"
	"github.com/katalvlaran/cubenet/solver"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	ts := httptest.NewServer(server.New(logger))
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	res, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestPortals(t *testing.T) {
	ts := newServer(t)

	for _, body := range []string{fixtures.SampleBoard, fixtures.Sample} {
		res := post(t, ts.URL+server.URIPortals+"?method=color&cross_check=true", body)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

		var d solver.Derivation
		require.NoError(t, json.NewDecoder(res.Body).Decode(&d))
		assert.Equal(t, solver.MethodColor, d.Method)
		assert.Equal(t, 4, d.Side)
		assert.Len(t, d.Portals, portal.Count)
	}
}

func TestPassword(t *testing.T) {
	ts := newServer(t)
	cases := []struct {
		query string
		want  int
	}{
		{"", fixtures.SampleCubePassword},
		{"?method=color", fixtures.SampleCubePassword},
		{"?method=flat", fixtures.SampleFlatPassword},
	}
	for _, tc := range cases {
		res := post(t, ts.URL+server.URIPassword+tc.query, fixtures.Sample)
		require.Equal(t, http.StatusOK, res.StatusCode, tc.query)

		var sol solver.Solution
		require.NoError(t, json.NewDecoder(res.Body).Decode(&sol))
		assert.Equal(t, tc.want, sol.Walk.Password, tc.query)
	}
}

func TestErrors(t *testing.T) {
	ts := newServer(t)
	five := fixtures.Board(fixtures.Malformed["five"], 1)
	cases := []struct {
		name string
		url  string
		body string
		code int
	}{
		{"unknown method", server.URIPortals + "?method=origami", fixtures.SampleBoard, http.StatusBadRequest},
		{"bad cross_check", server.URIPortals + "?cross_check=maybe", fixtures.SampleBoard, http.StatusBadRequest},
		{"bad cell", server.URIPortals, "..x.\n", http.StatusBadRequest},
		{"five faces", server.URIPortals, five, http.StatusUnprocessableEntity},
		{"no moves", server.URIPassword, fixtures.SampleBoard, http.StatusBadRequest},
		{"no start", server.URIPassword, fixtures.Puzzle(
			strings.Replace(fixtures.SampleBoard, "...#", "####", 1)+"\n", "10R5"), http.StatusBadRequest},
		{"strip", server.URIPassword, fixtures.Puzzle(fixtures.Board(fixtures.Malformed["strip"], 1), "3"),
			http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := post(t, ts.URL+tc.url, tc.body)
			require.Equal(t, tc.code, res.StatusCode)

			var body server.ErrorBody
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRouting(t *testing.T) {
	ts := newServer(t)
	res, err := http.Get(ts.URL + server.URIPortals)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + server.URIWalk
	con, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { con.Close() })
	return con
}

func TestWalk_Stream(t *testing.T) {
	ts := newServer(t)
	con := dial(t, ts)
	require.NoError(t, con.WriteJSON(server.WalkRequest{Method: solver.MethodColor, Puzzle: fixtures.Sample}))

	var (
		steps     int
		teleports int
		last      server.Frame
	)
	for {
		var f server.Frame
		require.NoError(t, con.ReadJSON(&f))
		if f.Type != "step" {
			last = f
			break
		}
		require.NotNil(t, f.Step)
		steps++
		if f.Step.Teleport {
			teleports++
		}
	}

	require.Equal(t, "solution", last.Type, last.Error)
	require.NotNil(t, last.Solution)
	assert.Equal(t, fixtures.SampleCubePassword, last.Solution.Walk.Password)
	assert.Equal(t, grid.Up, last.Solution.Walk.Facing)
	assert.Positive(t, steps)
	assert.Positive(t, teleports)
}

func TestWalk_Error(t *testing.T) {
	ts := newServer(t)
	con := dial(t, ts)
	require.NoError(t, con.WriteJSON(server.WalkRequest{Puzzle: "...\n"}))

	var f server.Frame
	require.NoError(t, con.ReadJSON(&f))
	assert.Equal(t, "error", f.Type)
	assert.Contains(t, f.Error, "blank line")
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	c, err := server.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "info", c.LogLevel.String())

	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	c, err = server.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "debug", c.LogLevel.String())

	t.Setenv("LOG_LEVEL", "loud")
	_, err = server.ConfigFromEnv()
	require.Error(t, err)
}
