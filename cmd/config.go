package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/depcheck/pkg/config"
	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/errors"
	"github.com/ajxudir/depcheck/pkg/interactive"
	"github.com/ajxudir/depcheck/pkg/verbose"
	"github.com/spf13/cobra"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long:  `Show, validate, or create .depcheck.yml configuration files.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .depcheck.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .depcheck.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		cfg, err := loadConfigFunc(configPathFlag, workingDir())
		if err != nil {
			return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
		}
		printEffectiveConfig(cfg)
		return nil
	}

	return cmd.Help()
}

// printEffectiveConfig prints the merged configuration values.
func printEffectiveConfig(cfg *config.Config) {
	fmt.Println("Effective configuration:")
	fmt.Println()
	fmt.Printf("Working Directory: %s\n", cfg.WorkingDir)
	if len(cfg.Extends) > 0 {
		fmt.Printf("Extends: %s\n", strings.Join(cfg.Extends, ", "))
	}
	fmt.Printf("Installer: %s\n", cfg.GetInstaller())
	fmt.Printf("Save Exact: %v\n", cfg.SaveExact)
	fmt.Printf("Global: %v\n", cfg.Global)
	fmt.Printf("Theme: %s\n", cfg.GetTheme())
	fmt.Printf("Page Margin: %d\n", cfg.GetPageMargin())

	fmt.Println()
	fmt.Println("Groups:")
	for _, g := range interactive.Groups {
		state := "shown"
		if cfg.IsGroupHidden(g.Key) {
			state = "hidden"
		}
		fmt.Printf("  %-10s %s\n", g.Key, state)
	}
}

// validateConfigFile validates the configuration file at the specified path.
//
// If no path is specified via --config flag, validates .depcheck.yml in the
// current working directory.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError on read or validation failure
func validateConfigFile() error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = filepath.Join(workingDir(), config.LocalConfigName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigFile(data)
	if !result.HasErrors() {
		// Value checks run on the parsed file itself; extends are not followed.
		if cfg, err := config.LoadConfigFileStrict(configPath); err == nil {
			result = cfg.Validate()
		}
	}

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)
		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				fmt.Printf("  ERROR: %s\n", e.VerboseError())
			} else {
				fmt.Printf("  ERROR: %s\n", e.Error())
			}
		}
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for the valid keys and values\n", constants.IconLightbulb)
		}
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	fmt.Printf("%s Configuration valid: %s\n", constants.IconValid, configPath)
	return nil
}

// createConfigTemplate creates a new .depcheck.yml template file.
//
// The template is created in the current directory. Fails if a config
// file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	configPath := config.LocalConfigName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// Owner read/write only
	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
