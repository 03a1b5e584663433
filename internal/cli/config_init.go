package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/esgfocus/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes a default
// ~/.esgfocus/config.yaml, the factors directory and a .gitignore for logs.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.esgfocus/config.yaml
  esgfocus config init

  # Overwrite an existing configuration
  esgfocus config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// initGlobalConfig writes the default configuration to the config directory.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	if err = config.EnsureSubDirs(); err != nil {
		return fmt.Errorf("failed to create configuration directories: %w", err)
	}
	if err = config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	created, err := config.EnsureGitignore(dir)
	if err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	if created {
		cmd.Printf("Created %s\n", filepath.Join(dir, ".gitignore"))
	}
	return nil
}
