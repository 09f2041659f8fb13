package openapi_server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

func testCampus() *campus.Map {
	m := campus.NewMap()
	for _, c := range []geometry.Coordinate{
		geometry.MakeCoordinate(1, 41.8700, -87.6500),
		geometry.MakeCoordinate(2, 41.8710, -87.6500),
		geometry.MakeCoordinate(3, 41.8720, -87.6500),
		geometry.MakeCoordinate(7, 41.8800, -87.6400),
		geometry.MakeCoordinate(8, 41.8805, -87.6400),
	} {
		m.Nodes[c.ID] = c
	}
	m.Footways = []campus.Footway{
		{ID: 100, Nodes: []int64{1, 2, 3}},
		{ID: 101, Nodes: []int64{7, 8}},
	}
	m.Buildings = []campus.Building{
		{FullName: "Student Center East", Abbrev: "SCE", Coordinate: geometry.MakeCoordinate(200, 41.8699, -87.6501)},
		{FullName: "Science and Engineering Offices", Abbrev: "SEO", Coordinate: geometry.MakeCoordinate(201, 41.8721, -87.6499)},
		{FullName: "Island Hall", Abbrev: "IH", Coordinate: geometry.MakeCoordinate(202, 41.8806, -87.6400)},
	}
	return m
}

func newTestServer(t *testing.T, cacheSize int) (*httptest.Server, *DefaultApiService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := routing.NewRouter(testCampus(), routing.WithLogger(logger))
	service, err := NewDefaultApiService(router, cacheSize, logger)
	require.NoError(t, err)
	server := httptest.NewServer(NewRouter(logger, NewDefaultApiController(service)))
	t.Cleanup(server.Close)
	return server, service
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestComputeRoute(t *testing.T) {
	server, _ := newTestServer(t, 8)

	resp := post(t, server.URL+"/routes", `{"start":"SCE","destination":"science"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get(HeaderXRequestID))

	result := decode[RouteResult](t, resp)
	require.NotNil(t, result.Start)
	require.NotNil(t, result.Destination)
	assert.Equal(t, "SCE", result.Start.Abbrev)
	assert.Equal(t, "SEO", result.Destination.Abbrev)
	assert.True(t, result.Reachable)
	assert.Equal(t, []int64{1, 2, 3}, result.Path)
	assert.Len(t, result.Waypoints, 3)
	assert.InDelta(t, geometry.Distance(41.87, -87.65, 41.872, -87.65), result.Distance, 1e-9)
}

func TestComputeRouteUsesCache(t *testing.T) {
	server, service := newTestServer(t, 8)

	for i := 0; i < 3; i++ {
		resp := post(t, server.URL+"/routes", `{"start":"SCE","destination":"SEO"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 1, service.cache.Len())
}

func TestComputeRouteUnreachable(t *testing.T) {
	server, _ := newTestServer(t, 0)

	resp := post(t, server.URL+"/routes", `{"start":"SCE","destination":"IH"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[RouteResult](t, resp)
	assert.False(t, result.Reachable)
	assert.Empty(t, result.Path)
}

func TestComputeRouteErrors(t *testing.T) {
	server, _ := newTestServer(t, 8)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"unknown start", `{"start":"Stadium","destination":"SEO"}`, http.StatusNotFound},
		{"unknown destination", `{"start":"SEO","destination":"Stadium"}`, http.StatusNotFound},
		{"malformed body", `{"start":`, http.StatusBadRequest},
		{"unknown field", `{"start":"SEO","destination":"SCE","via":"IH"}`, http.StatusBadRequest},
		{"missing destination", `{"start":"SEO"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, server.URL+"/routes", tt.body)
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.NotEmpty(t, decode[ErrorBody](t, resp).Message)
		})
	}
}

func TestComputeCoordinateRoute(t *testing.T) {
	server, _ := newTestServer(t, 8)

	resp := post(t, server.URL+"/routes/coordinates",
		`{"origin":{"lat":41.8701,"lon":-87.6500},"destination":{"lat":41.8719,"lon":-87.6500}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[RouteResult](t, resp)
	assert.Nil(t, result.Start)
	assert.Equal(t, int64(1), result.StartNode.ID)
	assert.Equal(t, int64(3), result.DestinationNode.ID)
	assert.Equal(t, []int64{1, 2, 3}, result.Path)

	resp = post(t, server.URL+"/routes/coordinates",
		`{"origin":{"lat":120,"lon":0},"destination":{"lat":41.87,"lon":-87.65}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, server.URL+"/routes/coordinates", `{"origin":{"lat":41.87,"lon":-87.65}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBuildings(t *testing.T) {
	server, _ := newTestServer(t, 8)

	resp := get(t, server.URL+"/buildings")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buildings := decode[[]Building](t, resp)
	require.Len(t, buildings, 3)
	assert.Equal(t, "Island Hall", buildings[0].FullName)

	resp = get(t, server.URL+"/buildings/SEO")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	match := decode[BuildingMatch](t, resp)
	assert.Equal(t, "abbreviation", match.Match)
	assert.Equal(t, "Science and Engineering Offices", match.Building.FullName)

	resp = get(t, server.URL+"/buildings/center")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "partial", decode[BuildingMatch](t, resp).Match)

	resp = get(t, server.URL+"/buildings/Stadium")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNearest(t *testing.T) {
	server, _ := newTestServer(t, 8)

	resp := get(t, server.URL+"/nearest?lat=41.8710&lon=-87.6500")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	nearest := decode[NearestResult](t, resp)
	assert.Equal(t, int64(2), nearest.Node.ID)
	assert.Zero(t, nearest.Distance)

	assert.Equal(t, http.StatusBadRequest, get(t, server.URL+"/nearest?lat=abc&lon=1").StatusCode)
	assert.Equal(t, http.StatusBadRequest, get(t, server.URL+"/nearest?lat=1").StatusCode)
	assert.Equal(t, http.StatusBadRequest, get(t, server.URL+"/nearest?lat=1&lon=200").StatusCode)
}

func TestNodesAndStats(t *testing.T) {
	server, _ := newTestServer(t, 8)

	resp := get(t, server.URL+"/nodes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[Nodes](t, resp).Waypoints, 5)

	resp = get(t, server.URL+"/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, Stats{Nodes: 5, Footways: 2, Buildings: 3, Vertices: 5, Edges: 6}, decode[Stats](t, resp))
}

func TestRequestIDIsEchoed(t *testing.T) {
	server, _ := newTestServer(t, 8)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/stats", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderXRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderXRequestID))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	handler := RequestIDMiddleware(logger)(LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tea?cup=1", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "cup=1")
	assert.Contains(t, buf.String(), "request_id=")
}
