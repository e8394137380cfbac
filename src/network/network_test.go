package network

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"etf-matcher-loader/src/helpers"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/models"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func newTestManager() *NetworkManager {
	cfg := &models.MConfig{
		Name: "network-test",
		Remote: models.MRemoteConfig{
			RequestTimeout: 5,
			UserAgent:      "etf-matcher-loader-test",
		},
	}
	return NewNetworkManager(cfg, logger.NewLogger(nil, "NetworkTest"))
}

// -----------------------------------------------------------------------------

func TestGet(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("payload"))
	}))
	defer ts.Close()

	nm := newTestManager()

	body, err := nm.Get(ts.URL+"/file.bin", nil)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), body)
	require.Equal(t, "etf-matcher-loader-test", gotUA)
}

// -----------------------------------------------------------------------------

func TestGetAppendsParams(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("version")
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	nm := newTestManager()

	_, err := nm.Get(ts.URL, map[string]string{"version": "v5"})
	require.NoError(t, err)
	require.Equal(t, "v5", gotQuery)
}

// -----------------------------------------------------------------------------

func TestGetNon2xxStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	nm := newTestManager()

	_, err := nm.Get(ts.URL+"/missing.bin", nil)
	require.Error(t, err)

	var transport *helpers.TransportError
	require.True(t, errors.As(err, &transport))
}

// -----------------------------------------------------------------------------

func TestGetConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	nm := newTestManager()

	_, err := nm.Get(url, nil)
	require.Error(t, err)

	var transport *helpers.TransportError
	require.True(t, errors.As(err, &transport))
}

// -----------------------------------------------------------------------------

func TestGetText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[ticker_vector_config]\n"))
	}))
	defer ts.Close()

	nm := newTestManager()

	text, err := nm.GetText(ts.URL)
	require.NoError(t, err)
	require.Equal(t, "[ticker_vector_config]\n", text)
}
