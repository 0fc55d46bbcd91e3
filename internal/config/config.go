// Package config provides configuration management for the grade
// distribution analyzer.
package config

import "log"

var AppVersion = "-unset-" // will be set at build time

const (
	// DefaultListenPort is used when no -webport flag or env override is given.
	DefaultListenPort = 8080

	// Histogram bucket bounds; requests outside this range are clamped.
	DefaultHistogramBuckets = 10
	MaxHistogramBuckets     = 100
)

// MainConfig holds the main configuration for the analyzer.
type MainConfig struct {
	// Web interface settings
	Web WebConfig `json:"web"`

	// Database settings
	Database DatabaseConfig `json:"database"`

	// Number of equal-width histogram buckets per analysis
	HistogramBuckets int `json:"histogram_buckets"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration.
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	WebDir     string `json:"web_dir"` // Directory holding templates/ and static/
	Debug      bool   `json:"debug"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	DataDir string `json:"data_dir"` // Directory for the usage counter database
}

// NewDefaultConfig returns a configuration with sensible defaults.
func NewDefaultConfig() *MainConfig {
	maincfg := &MainConfig{
		AppVersion: AppVersion,
		Web: WebConfig{
			ListenPort: DefaultListenPort,
			SSL:        false,
			WebDir:     "web",
		},
		Database: DatabaseConfig{
			DataDir: "data",
		},
		HistogramBuckets: DefaultHistogramBuckets,
	}
	log.Printf("MainConfig initialized with %d histogram buckets", maincfg.HistogramBuckets)
	return maincfg
}

// ClampBuckets normalizes a requested bucket count into the allowed range.
func ClampBuckets(n int) int {
	if n < 1 {
		return DefaultHistogramBuckets
	}
	if n > MaxHistogramBuckets {
		return MaxHistogramBuckets
	}
	return n
}
