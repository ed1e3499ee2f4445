package domain

import (
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "stravex.yaml"

	// DefaultSelectBatch is the number of rows covered by the select-all gesture.
	DefaultSelectBatch = 20

	// DefaultRowAdvance is the number of Down presses that move to the next result row.
	DefaultRowAdvance = 3
)

// Config is the resolved configuration of stravex.
type Config struct {
	Catalog     Catalog
	Layout      Layout
	Timing      Timing
	SelectBatch int
	RowAdvance  int
	ExportDir   string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Catalog:     DefaultCatalog(),
		Layout:      DefaultLayout(),
		Timing:      DefaultTiming(),
		SelectBatch: DefaultSelectBatch,
		RowAdvance:  DefaultRowAdvance,
		ExportDir:   DefaultExportDir(),
	}
}

// DefaultExportDir returns the folder the Save As dialog writes into.
// It is empty when the home directory cannot be resolved.
func DefaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Downloads")
}
