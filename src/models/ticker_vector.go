package models

import "sort"

// -----------------------------------------------------------------------------

// MTickerVectorConfig describes one ticker vector dataset listed in the
// remote manifest. Only Path is guaranteed to be set; every other field is
// informational metadata and stays nil/empty when the manifest omits it.
// Callers must treat absence as "unknown", not as a default value.
type MTickerVectorConfig struct {
	// Path is either a bare filename (resolved against the base URL) or a
	// fully qualified URL.
	Path        string  `toml:"path" json:"path"`
	Description *string `toml:"description" json:"description,omitempty"`
	// The live manifest spells this key with three o's. The tag must stay
	// verbatim for wire compatibility.
	ProtoNotebook          *string  `toml:"proto_noteboook" json:"proto_noteboook,omitempty"`
	LastTrainingTime       *string  `toml:"last_training_time" json:"last_training_time,omitempty"`
	Features               *uint32  `toml:"features" json:"features,omitempty"`
	VectorDimensions       *uint32  `toml:"vector_dimensions" json:"vector_dimensions,omitempty"`
	TrainingSequenceLength *uint32  `toml:"training_sequence_length" json:"training_sequence_length,omitempty"`
	TrainingDataSources    []string `toml:"training_data_sources" json:"training_data_sources,omitempty"`
}

// -----------------------------------------------------------------------------

// MTickerVectorConfigMap maps a dataset key (e.g. "default",
// "v5-sma-lstm-stacks") to its descriptor. Keys are unique; lookups are
// exact-match and case-sensitive.
type MTickerVectorConfigMap map[string]MTickerVectorConfig

// -----------------------------------------------------------------------------

// SortedKeys returns the dataset keys in ascending order. The map itself is
// unordered; any surface that iterates (listing endpoints, CLI output) goes
// through this for deterministic results.
func (m MTickerVectorConfigMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// -----------------------------------------------------------------------------

// MManifest is the full manifest document. The only recognized top-level
// table is ticker_vector_config; unknown tables and fields are ignored.
type MManifest struct {
	TickerVectorConfig MTickerVectorConfigMap `toml:"ticker_vector_config"`
}
