package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mrclmr/a2m/internal/config"
	"github.com/mrclmr/a2m/internal/log"

	"github.com/spf13/cobra"
)

func ExecuteContext(ctx context.Context, version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(
	version string,
) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Version: version,
		Use:     "a2m",
		Short:   "Write a manifest of audio files for a static page",
		Long: `Write a manifest of audio files for a static page.

Scans <root>/<category>/<language>/ for audio files and writes every file
as {category, lang, cls, url, title} to manifest.json and manifest.js.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			setLogger(cmd.OutOrStdout(), cfg.LogLevel)
			return build(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"configuration yaml replacing the compiled-in one (see 'a2m example')")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yml", "yaml")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the written manifests match the audio files",
		Long: `Check that the written manifests match the audio files.

Scans like the root command but writes nothing. Fails if a manifest
is missing or its content differs.`,
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			setLogger(cmd.OutOrStdout(), cfg.LogLevel)
			return check(cmd.Context(), cfg)
		},
	}

	exampleCmd := &cobra.Command{
		Use:               "example",
		Short:             "Print the compiled-in configuration yaml",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Example())
			return err
		},
	}

	rootCmd.AddCommand(checkCmd)

	rootCmd.AddCommand(exampleCmd)

	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration not found: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDONLY, 0o600)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, err := config.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func setLogger(w io.Writer, level slog.Level) {
	switch level {
	case slog.LevelInfo:
		slog.SetDefault(slog.New(log.NewMsgHandler(w, level)))
	default:
		slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	}
}
