package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/platform"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dataDir    string
	backend    string
	slot       string
	configPath string
	readOnly   bool
)

// getwd is replaced in tests.
var getwd = os.Getwd

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A local notes collection manager",
	Long: `Jot keeps a flat list of short text notes on this device.
Notes are stored as a JSON array in a single slot: a file, a bbolt key or a SQLite row.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if _, cfg, err := resolve(); err == nil {
			level = cfg.Level()
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", "", "Store directory (default: <root>/.jot)")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", "", "Storage backend: fs, bolt or sqlite")
	rootCmd.PersistentFlags().StringVar(&slot, "slot", "", "Name of the slot holding the notes")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to jot.yaml (default: found upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Reject every write")
}

// resolve finds the store directory and the config file.
// Precedence: flags, then jot.yaml, then <root>/.jot, then ./.jot.
func resolve() (string, platform.FileConfig, error) {
	cwd, err := getwd()
	if err != nil {
		return "", platform.FileConfig{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	base := cwd
	if root, err := jot.FindRoot(cwd); err == nil {
		base = root
	}

	path := configPath
	if path == "" {
		path = filepath.Join(base, platform.ConfigFile)
	}
	cfg, err := platform.LoadConfig(path)
	if err != nil {
		return "", cfg, err
	}

	dir := dataDir
	if dir == "" {
		dir = cfg.ResolveDir()
	}
	if dir == "" {
		dir = filepath.Join(base, platform.DataDir)
	}
	return dir, cfg, nil
}

// openCollection builds and loads the collection selected by flags and config.
func openCollection(ctx context.Context) (*jot.Collection, error) {
	dir, cfg, err := resolve()
	if err != nil {
		return nil, err
	}

	opts := cfg.Options()
	opts = append(opts,
		jot.WithLogger(slog.Default()),
		jot.WithAutoInit(true),
	)
	if backend != "" {
		opts = append(opts, jot.WithBackend(backend))
	}
	if slot != "" {
		opts = append(opts, jot.WithSlot(slot))
	}
	if readOnly {
		opts = append(opts, jot.WithReadOnly(true))
	}

	slog.Debug("opening collection", "dir", dir)
	coll, err := jot.Open(ctx, dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes in %s: %w", dir, err)
	}
	return coll, nil
}
