// Package config provides configuration management for seqget.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Environment variable overrides (SEQGET_* variables, with
//     optional .env support)
//   - Default configuration values
//   - Conversion to OutputConfig for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads to ./download
//	// One fetch at a time
//	// Expansion capped at 100000 items
//
// # Loading
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Environment variables override whatever the file provided, e.g.
// SEQGET_MAX_CONCURRENT_FETCHES=8 or SEQGET_OUTPUT_DIR=/data/out.
//
// # Saving
//
//	settings.OutputDir = "/custom/path"
//	err := settings.Save("/path/to/config.json")
package config
