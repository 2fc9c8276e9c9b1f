package config

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mrclmr/a2m/internal/output"
)

func TestParseExample(t *testing.T) {
	_, err := Parse(strings.NewReader(Example()))
	if err != nil {
		t.Fatalf("Parse(): %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v, want %v", cfg.LogLevel, slog.LevelInfo)
	}

	layout := cfg.Layout()
	if want := []string{"Crime", "Non-Crime", "Crime OOD", "Non-Crime OOD"}; !slices.Equal(layout.Categories, want) {
		t.Fatalf("Categories = %v, want %v", layout.Categories, want)
	}
	if want := []string{"en", "zh", "es", "fr", "ja"}; !slices.Equal(layout.Languages, want) {
		t.Fatalf("Languages = %v, want %v", layout.Languages, want)
	}
	if want := []string{"mp3", "wav", "m4a", "ogg"}; !slices.Equal(layout.Extensions, want) {
		t.Fatalf("Extensions = %v, want %v", layout.Extensions, want)
	}
	if layout.URLBase != "audio" {
		t.Fatalf("URLBase = %q, want audio", layout.URLBase)
	}

	r := layout.Record("Crime OOD", "ja", "sample1.wav")
	if r.Class != "Crime" || r.URL != "audio/Crime%20OOD/ja/sample1.wav" || r.Title != "JA — Crime OOD — sample1.wav" {
		t.Fatalf("Record() = %+v", r)
	}

	targets := cfg.Targets()
	want := []output.Target{
		{Format: output.JSON, Path: filepath.Join("audio", "manifest.json")},
		{Format: output.JS, Path: filepath.Join("audio", "manifest.js"), Global: "window.AUDIO_MANIFEST"},
	}
	if !slices.Equal(targets, want) {
		t.Fatalf("Targets() = %v, want %v", targets, want)
	}
}

const minimal = `
root: %s
categories: [Crime, Non-Crime]
languages: [en]
extensions: [.MP3, wav]
class: {marker: Non-Crime, match: Non-Crime, other: Crime}
outputs:
  - path: manifest.json
`

func TestParse_Normalizes(t *testing.T) {
	cfg, err := Parse(strings.NewReader(strings.Replace(minimal, "%s", "public/sounds", 1)))
	if err != nil {
		t.Fatalf("Parse(): %v", err)
	}
	if want := []string{"mp3", "wav"}; !slices.Equal(cfg.Extensions, want) {
		t.Fatalf("Extensions = %v, want %v", cfg.Extensions, want)
	}
	if got := cfg.Layout().URLBase; got != "sounds" {
		t.Fatalf("URLBase = %q, want sounds", got)
	}
	if got := cfg.Targets()[0]; got.Format != output.JSON {
		t.Fatalf("Format = %v, want json by default", got.Format)
	}
}

func TestParse_Errors(t *testing.T) {
	base := strings.Replace(minimal, "%s", "audio", 1)
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			"unknown key",
			base + "color: blue\n",
			"field color not found",
		},
		{
			"missing root",
			strings.Replace(base, "root: audio", "", 1),
			"key 'root' is missing or value is empty",
		},
		{
			"empty categories",
			strings.Replace(base, "[Crime, Non-Crime]", "[]", 1),
			"key 'categories' is missing or value is empty",
		},
		{
			"duplicate language",
			strings.Replace(base, "languages: [en]", "languages: [en, en]", 1),
			"key 'languages' contains 'en' more than once",
		},
		{
			"duplicate extension after normalizing",
			strings.Replace(base, "[.MP3, wav]", "[.MP3, mp3]", 1),
			"key 'extensions' contains 'mp3' more than once",
		},
		{
			"missing class",
			strings.Replace(base, "class: {marker: Non-Crime, match: Non-Crime, other: Crime}", "", 1),
			"key 'class' is missing or value is empty",
		},
		{
			"same classes",
			strings.Replace(base, "other: Crime", "other: Non-Crime", 1),
			"class.match and class.other must differ",
		},
		{
			"js without global",
			base + "  - format: js\n    path: manifest.js\n",
			"key 'outputs.global' is missing or value is empty",
		},
		{
			"unknown format",
			base + "  - format: xml\n    path: manifest.xml\n",
			"unknown output format 'xml'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Parse(), want error %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Fatalf("Parse() error = %v, want %q", err, tt.errMsg)
			}
		})
	}
}
