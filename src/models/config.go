package models

// MConfig Structure
type MConfig struct {
	Name     string        `yaml:"name"`
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	LogLevel string        `yaml:"log_level"`
	Remote   MRemoteConfig `yaml:"remote"`
}

type MRemoteConfig struct {
	BaseURL        string `yaml:"base_url"`
	ManifestFile   string `yaml:"manifest_file"`
	SymbolMapFile  string `yaml:"symbol_map_file"`
	RequestTimeout int    `yaml:"timeout"`
	UserAgent      string `yaml:"user_agent"` // Optional
}
