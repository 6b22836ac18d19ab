package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/jot/internal/platform"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a jot root in the current directory",
	Long:  `Init writes a jot.yaml and creates the .jot data directory, so commands run below this directory share one collection.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		path := filepath.Join(cwd, platform.ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		cfg := platform.FileConfig{
			Backend: backend,
			Dir:     platform.DataDir,
			Slot:    slot,
		}
		if cfg.Backend == "" {
			cfg.Backend = platform.BackendFS
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		if err := os.MkdirAll(filepath.Join(cwd, platform.DataDir), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Initialized jot in", cwd)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
