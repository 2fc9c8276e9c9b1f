package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/mrclmr/a2m/internal/config"
	"github.com/mrclmr/a2m/internal/manifest"
	"github.com/mrclmr/a2m/internal/output"
)

type encoded struct {
	target  output.Target
	content []byte
}

// build scans the audio tree and overwrites every output.
// Nothing is written when the scan or an encoding fails.
func build(ctx context.Context, cfg *config.Config) error {
	records, files, err := scanAndEncode(ctx, cfg)
	if err != nil {
		return err
	}

	paths := make([]any, 0, 2*len(files))
	for _, f := range files {
		err := f.target.WriteFile(f.content)
		if err != nil {
			return err
		}
		paths = append(paths, f.target.Format.String(), f.target.Path)
	}

	slog.Info(fmt.Sprintf("Wrote %d entries to", len(records)), paths...)
	return nil
}

// check compares every output on disk with a fresh scan.
func check(ctx context.Context, cfg *config.Config) error {
	records, files, err := scanAndEncode(ctx, cfg)
	if err != nil {
		return err
	}

	var stale []string
	paths := make([]any, 0, 2*len(files))
	for _, f := range files {
		existing, err := os.ReadFile(f.target.Path)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("missing", "path", f.target.Path)
			stale = append(stale, f.target.Path)
			continue
		}
		if err != nil {
			return err
		}
		if !bytes.Equal(existing, f.content) {
			slog.Warn("outdated", "path", f.target.Path)
			stale = append(stale, f.target.Path)
			continue
		}
		paths = append(paths, f.target.Format.String(), f.target.Path)
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", manifest.ErrStale, strings.Join(stale, ", "))
	}

	slog.Info(fmt.Sprintf("%d entries up to date in", len(records)), paths...)
	return nil
}

func scanAndEncode(ctx context.Context, cfg *config.Config) ([]manifest.Record, []encoded, error) {
	layout := cfg.Layout()
	records, err := manifest.Scan(ctx, cfg.Root, layout)
	if err != nil {
		return nil, nil, err
	}
	manifest.Sort(records, layout)

	targets := cfg.Targets()
	files := make([]encoded, len(targets))
	for i, t := range targets {
		content, err := t.Encode(records)
		if err != nil {
			return nil, nil, err
		}
		files[i] = encoded{target: t, content: content}
	}
	return records, files, nil
}
