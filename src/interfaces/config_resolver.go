package interfaces

import "etf-matcher-loader/src/models"

// -----------------------------------------------------------------------------
// IConfigResolver defines the contract for resolving the remote manifest of
// ticker vector dataset descriptors.
// -----------------------------------------------------------------------------

type IConfigResolver interface {

	// -----------------------------------------------------------------------------

	// LoadAllConfigsFromURL fetches and parses the manifest at the given URL.
	// Either the whole map parses or the call fails; no partial results.
	LoadAllConfigsFromURL(url string) (models.MTickerVectorConfigMap, error)

	// -----------------------------------------------------------------------------

	// GetAllConfigs fetches and parses the well-known manifest. Every call
	// re-fetches; nothing is cached.
	GetAllConfigs() (models.MTickerVectorConfigMap, error)

	// -----------------------------------------------------------------------------

	// GetConfigByKeyRemote fetches the manifest and looks up one key.
	// Returns *helpers.NotFoundError if the key is absent.
	GetConfigByKeyRemote(key string) (models.MTickerVectorConfig, error)
}
