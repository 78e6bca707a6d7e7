package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/depcheck/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// LocalConfigName is the config file looked up in the working directory.
const LocalConfigName = ".depcheck.yml"

// DefaultMaxConfigFileSize is the largest config file LoadConfig reads (1MB).
const DefaultMaxConfigFileSize int64 = 1 << 20

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .depcheck.yml in the working directory.
// Files are layered over the built-in defaults: a value present in a file
// replaces the default, an absent value keeps it. Supports config
// inheritance via the extends mechanism.
//
// Parameters:
//   - configPath: path to the config file, or empty to use defaults
//   - workDir: working directory for the configuration
//
// Returns:
//   - *Config: the loaded and merged configuration
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()

	path := configPath
	if path == "" {
		localConfig := filepath.Join(workDir, LocalConfigName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			path = localConfig
		}
	}

	if path == "" {
		verbose.Info("Using built-in default configuration")
	} else {
		verbose.Infof("Loading config from: %s", path)
		extended, err := applyConfigFile(cfg, path, map[string]bool{})
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		verbose.ConfigLoaded(path, extended)
	}

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else {
		cfg.WorkingDir = "."
	}

	if result := cfg.Validate(); result.HasErrors() {
		return nil, fmt.Errorf("%s", result.ErrorMessages())
	}

	return cfg, nil
}

// applyConfigFile layers a config file and everything it extends onto cfg.
//
// It performs the following operations:
//   - Step 1: Reads the file, enforcing DefaultMaxConfigFileSize
//   - Step 2: Applies each extends entry first, relative to the file's directory
//   - Step 3: Decodes the file itself onto cfg
//
// Parameters:
//   - cfg: configuration to update in place
//   - path: file to apply
//   - stack: absolute paths currently being applied, for cycle detection
//
// Returns:
//   - []string: every extended path that was applied, in application order
//   - error: on read, parse or cycle errors
func applyConfigFile(cfg *Config, path string, stack map[string]bool) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if stack[abs] {
		return nil, fmt.Errorf("circular extends: %s", path)
	}
	stack[abs] = true
	defer delete(stack, abs)

	data, err := readConfigFile(abs, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, err
	}

	var head struct {
		Extends []string `yaml:"extends"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	var extended []string
	for _, ext := range head.Extends {
		extPath := ext
		if !filepath.IsAbs(extPath) {
			extPath = filepath.Join(filepath.Dir(abs), extPath)
		}
		verbose.Printf("Config %s extends %s", path, extPath)
		nested, err := applyConfigFile(cfg, extPath, stack)
		if err != nil {
			return nil, fmt.Errorf("failed to process extends %q: %w", ext, err)
		}
		extended = append(extended, nested...)
		extended = append(extended, extPath)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return extended, nil
}

// readConfigFile reads a config file with a size limit.
//
// Parameters:
//   - path: path to the config file
//   - maxSize: maximum allowed file size in bytes
//
// Returns:
//   - []byte: the file contents
//   - error: error if file is too large or cannot be read
func readConfigFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

// LoadConfigFileStrict loads a single config file and rejects unknown fields.
//
// This is more strict than LoadConfig: extends entries are not followed,
// and typos such as "saveExact" are reported with a suggestion.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if file has unknown fields, validation errors, or invalid YAML
func LoadConfigFileStrict(path string) (*Config, error) {
	data, err := readConfigFile(path, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, err
	}

	result := ValidateConfigFile(data)
	if result.HasErrors() {
		return nil, fmt.Errorf("%s", result.ErrorMessages())
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &cfg, nil
}
