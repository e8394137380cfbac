package interfaces

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for blocking HTTP GET requests.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// Get performs a single GET request to the specified URL with parameters.
	// Returns the raw response body or an error. One attempt only: this layer
	// performs no retries.
	Get(url string, params map[string]string) ([]byte, error)

	// -----------------------------------------------------------------------------

	// GetText performs a single GET request and returns the decoded body text.
	GetText(url string) (string, error)
}
