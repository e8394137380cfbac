package network

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"etf-matcher-loader/src/helpers"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/models"
)

type NetworkManager struct {
	Config *models.MConfig
	Client *http.Client
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewNetworkManager(cfg *models.MConfig, log *logger.Logger) *NetworkManager {
	return &NetworkManager{
		Config: cfg,
		Logger: log,
		Client: &http.Client{
			Timeout: time.Duration(cfg.Remote.RequestTimeout) * time.Second,
		},
	}
}

// -----------------------------------------------------------------------------

// Get performs a single GET request. Any network failure or non-2xx status
// comes back as *helpers.TransportError; retry policy belongs to callers.
func (nm *NetworkManager) Get(urlStr string, params map[string]string) ([]byte, error) {
	finalUrl := urlStr
	if len(params) > 0 {
		reqUrl, err := url.Parse(urlStr)
		if err != nil {
			return nil, helpers.NewTransportError(fmt.Sprintf("invalid URL '%s'", urlStr), err)
		}

		q := reqUrl.Query()
		for k, v := range params {
			q.Add(k, v)
		}
		reqUrl.RawQuery = q.Encode()
		finalUrl = reqUrl.String()
	}

	req, err := http.NewRequest("GET", finalUrl, nil)
	if err != nil {
		return nil, helpers.NewTransportError(fmt.Sprintf("invalid request for '%s'", finalUrl), err)
	}

	if nm.Config.Remote.UserAgent != "" {
		req.Header.Set("User-Agent", nm.Config.Remote.UserAgent)
	}

	resp, err := nm.Client.Do(req)
	if err != nil {
		nm.Logger.Info("Request failed for %s: %v", finalUrl, err)
		return nil, helpers.NewTransportError(fmt.Sprintf("GET %s failed", finalUrl), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		nm.Logger.Info("Bad status %d for %s", resp.StatusCode, finalUrl)
		return nil, helpers.NewTransportError(fmt.Sprintf("GET %s returned status %d", finalUrl, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, helpers.NewTransportError(fmt.Sprintf("failed to read body of %s", finalUrl), err)
	}

	return body, nil
}

// -----------------------------------------------------------------------------

// GetText performs a single GET request and returns the body as text.
func (nm *NetworkManager) GetText(urlStr string) (string, error) {
	body, err := nm.Get(urlStr, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
