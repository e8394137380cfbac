package resolver

import (
	"fmt"

	"etf-matcher-loader/src/helpers"
	"etf-matcher-loader/src/interfaces"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/models"

	"github.com/pelletier/go-toml/v2"
)

// -----------------------------------------------------------------------------
// ConfigResolver
// -----------------------------------------------------------------------------

// ConfigResolver turns the remote TOML manifest into a keyed map of ticker
// vector descriptors. Every call re-fetches; nothing is cached and no state
// is shared between calls.
type ConfigResolver struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewConfigResolver(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *ConfigResolver {
	return &ConfigResolver{
		Config:  cfg,
		Network: netMgr,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

// ManifestURL returns the fully qualified URL of the well-known manifest.
func (r *ConfigResolver) ManifestURL() string {
	return r.Config.Remote.BaseURL + r.Config.Remote.ManifestFile
}

// -----------------------------------------------------------------------------

// LoadAllConfigsFromURL fetches the manifest text at the given URL and parses
// it. A fetch failure propagates as *helpers.TransportError; a document that
// does not conform to the schema fails as *helpers.ParseError. Either the
// whole map parses or the call fails.
func (r *ConfigResolver) LoadAllConfigsFromURL(url string) (models.MTickerVectorConfigMap, error) {
	text, err := r.Network.GetText(url)
	if err != nil {
		return nil, err
	}

	var manifest models.MManifest
	if err := toml.Unmarshal([]byte(text), &manifest); err != nil {
		return nil, helpers.NewParseError("manifest is not valid TOML", err)
	}

	// The ticker_vector_config table is the one required top-level section.
	if manifest.TickerVectorConfig == nil {
		return nil, helpers.NewParseError("manifest is missing the 'ticker_vector_config' table", nil)
	}

	// 'path' is required on every entry. One bad entry rejects the whole
	// document; no partial map is returned.
	for key, cfg := range manifest.TickerVectorConfig {
		if cfg.Path == "" {
			return nil, helpers.NewParseError(fmt.Sprintf("manifest entry '%s' is missing required field 'path'", key), nil)
		}
	}

	r.Logger.Debug("Loaded %d ticker vector configs from %s", len(manifest.TickerVectorConfig), url)
	return manifest.TickerVectorConfig, nil
}

// -----------------------------------------------------------------------------

// GetAllConfigs fetches and parses the well-known manifest.
func (r *ConfigResolver) GetAllConfigs() (models.MTickerVectorConfigMap, error) {
	return r.LoadAllConfigsFromURL(r.ManifestURL())
}

// -----------------------------------------------------------------------------

// GetConfigByKeyRemote fetches the manifest and looks up one key. Transport
// and parse failures pass through unchanged; an absent key comes back as
// *helpers.NotFoundError.
func (r *ConfigResolver) GetConfigByKeyRemote(key string) (models.MTickerVectorConfig, error) {
	allConfigs, err := r.GetAllConfigs()
	if err != nil {
		return models.MTickerVectorConfig{}, err
	}

	selected, ok := GetConfigByKey(allConfigs, key)
	if !ok {
		return models.MTickerVectorConfig{}, &helpers.NotFoundError{Key: key}
	}

	return selected, nil
}

// -----------------------------------------------------------------------------

// GetConfigByKey is a pure lookup with no I/O: exact match, case-sensitive.
// Keeping it separate from the fetch lets callers reuse one fetched map for
// several lookups, and lets it be tested without network access.
func GetConfigByKey(configs models.MTickerVectorConfigMap, key string) (models.MTickerVectorConfig, bool) {
	cfg, ok := configs[key]
	return cfg, ok
}
