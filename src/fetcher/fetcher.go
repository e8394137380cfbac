package fetcher

import (
	"strings"

	"etf-matcher-loader/src/interfaces"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/models"
)

// -----------------------------------------------------------------------------
// Reference resolution
// -----------------------------------------------------------------------------

type refKind int

const (
	refRelative refKind = iota
	refAbsolute
)

func (k refKind) String() string {
	if k == refAbsolute {
		return "absolute"
	}
	return "relative"
}

// resourceRef is the resolved form of a caller-supplied dataset reference:
// either a full URL used verbatim, or a bare filename resolved against the
// base URL.
type resourceRef struct {
	kind refKind
	url  string
}

// -----------------------------------------------------------------------------
// ResourceFetcher
// -----------------------------------------------------------------------------

// ResourceFetcher resolves dataset references (filenames, full URLs, or
// manifest keys) to raw bytes.
type ResourceFetcher struct {
	Config   *models.MConfig
	Network  interfaces.INetworkManager
	Resolver interfaces.IConfigResolver
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewResourceFetcher(cfg *models.MConfig, netMgr interfaces.INetworkManager, res interfaces.IConfigResolver, log *logger.Logger) *ResourceFetcher {
	return &ResourceFetcher{
		Config:   cfg,
		Network:  netMgr,
		Resolver: res,
		Logger:   log,
	}
}

// -----------------------------------------------------------------------------

// ResourceURL composes the base URL with a filename. Plain concatenation:
// no slash de-duplication, no escaping; the filename is trusted verbatim.
func (f *ResourceFetcher) ResourceURL(filename string) string {
	return f.Config.Remote.BaseURL + filename
}

// -----------------------------------------------------------------------------

// SymbolMapURL returns the fully qualified URL of the ticker symbol map.
func (f *ResourceFetcher) SymbolMapURL() string {
	return f.ResourceURL(f.Config.Remote.SymbolMapFile)
}

// -----------------------------------------------------------------------------

// resolveReference classifies a dataset reference. Only the exact prefixes
// "http://" and "https://" (case-sensitive) mark a full URL; everything else,
// including other schemes like "ftp://" and scheme-less hosts, is treated as
// a bare filename and concatenated onto the base URL.
func (f *ResourceFetcher) resolveReference(pathOrURL string) resourceRef {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return resourceRef{kind: refAbsolute, url: pathOrURL}
	}
	return resourceRef{kind: refRelative, url: f.ResourceURL(pathOrURL)}
}

// -----------------------------------------------------------------------------

// FetchResource retrieves the raw bytes for a bare filename or a full
// http(s) URL. Failures come back as *helpers.TransportError.
func (f *ResourceFetcher) FetchResource(pathOrURL string) ([]byte, error) {
	ref := f.resolveReference(pathOrURL)
	f.Logger.Debug("Fetching %s resource %s", ref.kind, ref.url)
	return f.Network.Get(ref.url, nil)
}

// -----------------------------------------------------------------------------

// FetchSymbolMap retrieves the ticker symbol map as an opaque blob. The
// binary layout is not this layer's business; bytes are forwarded as-is.
func (f *ResourceFetcher) FetchSymbolMap() ([]byte, error) {
	return f.FetchResource(f.SymbolMapURL())
}

// -----------------------------------------------------------------------------

// FetchDatasetByKey resolves a manifest key to its descriptor and fetches the
// bytes at the descriptor's path. Resolver and fetch errors pass through
// without additional wrapping.
func (f *ResourceFetcher) FetchDatasetByKey(key string) ([]byte, error) {
	cfg, err := f.Resolver.GetConfigByKeyRemote(key)
	if err != nil {
		return nil, err
	}

	return f.FetchResource(cfg.Path)
}
