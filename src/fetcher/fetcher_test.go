package fetcher

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"etf-matcher-loader/src/helpers"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/models"
	"etf-matcher-loader/src/network"
	"etf-matcher-loader/src/resolver"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

const manifestFixture = `
[ticker_vector_config.test]
path = "test_path.bin"
description = "Test Config"
`

// -----------------------------------------------------------------------------

func testConfig(baseURL string) *models.MConfig {
	return &models.MConfig{
		Name:     "fetcher-test",
		Host:     "127.0.0.1",
		Port:     8080,
		LogLevel: "INFO",
		Remote: models.MRemoteConfig{
			BaseURL:        baseURL,
			ManifestFile:   "ticker_vector_configs.toml",
			SymbolMapFile:  "ticker_symbol_map.flatbuffers.bin",
			RequestTimeout: 5,
		},
	}
}

// -----------------------------------------------------------------------------

func newTestFetcher(baseURL string) *ResourceFetcher {
	cfg := testConfig(baseURL)
	log := logger.NewLogger(nil, "FetcherTest")
	netMgr := network.NewNetworkManager(cfg, log)
	res := resolver.NewConfigResolver(cfg, netMgr, log)
	return NewResourceFetcher(cfg, netMgr, res, log)
}

// -----------------------------------------------------------------------------
// URL composition
// -----------------------------------------------------------------------------

func TestResourceURL(t *testing.T) {
	f := newTestFetcher("https://etfmatcher.com/data/")

	// Plain concatenation, nothing else
	for _, name := range []string{"dataset.bin", "nested/file.bin", "weird name.bin", ""} {
		require.Equal(t, "https://etfmatcher.com/data/"+name, f.ResourceURL(name))
	}
}

// -----------------------------------------------------------------------------

func TestSymbolMapURL(t *testing.T) {
	f := newTestFetcher("https://etfmatcher.com/data/")
	require.Equal(t, "https://etfmatcher.com/data/ticker_symbol_map.flatbuffers.bin", f.SymbolMapURL())
}

// -----------------------------------------------------------------------------
// Dual-mode resolution
// -----------------------------------------------------------------------------

func TestFetchResourceRelative(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte{0x01, 0x02, 0x03})
	}))
	defer ts.Close()

	f := newTestFetcher(ts.URL + "/")

	data, err := f.FetchResource("x.bin")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, data)
	require.Equal(t, "/x.bin", gotPath)
}

// -----------------------------------------------------------------------------

func TestFetchResourceAbsolute(t *testing.T) {
	var baseHits atomic.Int64
	base := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		baseHits.Add(1)
	}))
	defer base.Close()

	var gotPath string
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("elsewhere"))
	}))
	defer other.Close()

	f := newTestFetcher(base.URL + "/")

	// A full URL is used verbatim; the base URL plays no part
	data, err := f.FetchResource(other.URL + "/other/x.bin")
	require.NoError(t, err)
	require.Equal(t, []byte("elsewhere"), data)
	require.Equal(t, "/other/x.bin", gotPath)
	require.Equal(t, int64(0), baseHits.Load())
}

// -----------------------------------------------------------------------------

func TestFetchResourceUnknownScheme(t *testing.T) {
	var gotURI string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.RequestURI
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	f := newTestFetcher(ts.URL + "/")

	// Only http:// and https:// mark a full URL; anything else is treated as
	// a bare filename and concatenated onto the base.
	_, err := f.FetchResource("ftp://host/x.bin")
	require.NoError(t, err)
	require.Contains(t, gotURI, "ftp:")
}

// -----------------------------------------------------------------------------
// Well-known assets and compositions
// -----------------------------------------------------------------------------

func TestFetchSymbolMap(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ticker_symbol_map.flatbuffers.bin" {
			w.Write(payload)
			return
		}
		http.NotFound(w, r)
	}))
	defer ts.Close()

	f := newTestFetcher(ts.URL + "/")

	data, err := f.FetchSymbolMap()
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

// -----------------------------------------------------------------------------

func TestFetchDatasetByKey(t *testing.T) {
	payload := []byte("ticker vectors")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ticker_vector_configs.toml":
			w.Write([]byte(manifestFixture))
		case "/test_path.bin":
			w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	f := newTestFetcher(ts.URL + "/")

	data, err := f.FetchDatasetByKey("test")
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

// -----------------------------------------------------------------------------

func TestFetchDatasetByKeyNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(manifestFixture))
	}))
	defer ts.Close()

	f := newTestFetcher(ts.URL + "/")

	_, err := f.FetchDatasetByKey("nonexistent_key")
	require.Error(t, err)

	var notFound *helpers.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "nonexistent_key", notFound.Key)

	var transport *helpers.TransportError
	require.False(t, errors.As(err, &transport))
}
