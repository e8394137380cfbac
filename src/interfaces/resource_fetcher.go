package interfaces

// -----------------------------------------------------------------------------
// IResourceFetcher defines the contract for resolving dataset references to
// raw bytes.
// -----------------------------------------------------------------------------

type IResourceFetcher interface {

	// -----------------------------------------------------------------------------

	// ResourceURL composes the base URL with a filename. Pure string
	// concatenation; the filename is trusted verbatim.
	ResourceURL(filename string) string

	// -----------------------------------------------------------------------------

	// SymbolMapURL returns the fully qualified URL of the well-known ticker
	// symbol map asset.
	SymbolMapURL() string

	// -----------------------------------------------------------------------------

	// FetchResource retrieves the bytes for a bare filename or a full
	// http(s) URL.
	FetchResource(pathOrURL string) ([]byte, error)

	// -----------------------------------------------------------------------------

	// FetchSymbolMap retrieves the ticker symbol map as raw bytes.
	FetchSymbolMap() ([]byte, error)

	// -----------------------------------------------------------------------------

	// FetchDatasetByKey resolves a manifest key to its descriptor and fetches
	// the dataset bytes at the descriptor's path.
	FetchDatasetByKey(key string) ([]byte, error)
}
