package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/seqget/seqget/internal/model"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputDir      string `json:"output_dir" envconfig:"SEQGET_OUTPUT_DIR"`
	FileNameFormat string `json:"file_name_format" envconfig:"SEQGET_FILE_NAME_FORMAT"`

	// Download settings
	MaxConcurrentFetches  int           `json:"max_concurrent_fetches" envconfig:"SEQGET_MAX_CONCURRENT_FETCHES"`
	FetchTimeout          time.Duration `json:"fetch_timeout" envconfig:"SEQGET_FETCH_TIMEOUT"`
	DownloadMaxRetries    int           `json:"download_max_retries" envconfig:"SEQGET_DOWNLOAD_MAX_RETRIES"`
	DownloadRetryCooldown float64       `json:"download_retry_cooldown" envconfig:"SEQGET_DOWNLOAD_RETRY_COOLDOWN"`
	DownloadRetryExponent float64       `json:"download_retry_exponent" envconfig:"SEQGET_DOWNLOAD_RETRY_EXPONENT"`
	SkipExisting          bool          `json:"skip_existing" envconfig:"SEQGET_SKIP_EXISTING"`
	UserAgent             string        `json:"user_agent" envconfig:"SEQGET_USER_AGENT"`

	// Expansion settings
	MaxSequenceLength uint64 `json:"max_sequence_length" envconfig:"SEQGET_MAX_SEQUENCE_LENGTH"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:      "./download",
		FileNameFormat: "",

		MaxConcurrentFetches:  1,
		FetchTimeout:          5 * time.Minute,
		DownloadMaxRetries:    3,
		DownloadRetryCooldown: 0.2,
		DownloadRetryExponent: 4.0,
		SkipExisting:          false,
		UserAgent:             "seqget",

		MaxSequenceLength: 100000,
	}
}

// Load reads settings from a JSON file, then applies environment
// variable overrides. A missing file is not an error; defaults are
// used. A .env file in the working directory is honored when present,
// so local and deployed runs configure the same way.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, settings); err != nil {
			return nil, err
		}
	}

	// Environment overrides. The .env file is optional; in most setups
	// the variables are injected directly.
	_ = godotenv.Load()
	if err := envconfig.Process("", settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToOutputConfig converts settings to the model's OutputConfig.
func (s *Settings) ToOutputConfig() *model.OutputConfig {
	return &model.OutputConfig{
		Dir:            s.OutputDir,
		FileNameFormat: s.FileNameFormat,
	}
}
