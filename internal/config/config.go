package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/mrclmr/a2m/internal/manifest"
	"github.com/mrclmr/a2m/internal/output"
)

type Config struct {
	LogLevel       slog.Level        `yaml:"log_level"`
	Root           string            `yaml:"root"`
	URLBase        string            `yaml:"url_base"`
	Categories     []string          `yaml:"categories"`
	Languages      []string          `yaml:"languages"`
	LanguageLabels map[string]string `yaml:"language_labels"`
	Extensions     []string          `yaml:"extensions"`
	Class          *Class            `yaml:"class"`
	Outputs        []Output          `yaml:"outputs"`
}

func Parse(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var c Config
	err := decoder.Decode(&c)
	if err != nil {
		return nil, err
	}
	err = c.validate()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Layout returns the tree shape the scan walks.
func (c *Config) Layout() *manifest.Layout {
	urlBase := c.URLBase
	if urlBase == "" {
		urlBase = url.PathEscape(filepath.Base(c.Root))
	}
	return &manifest.Layout{
		Categories: c.Categories,
		Languages:  c.Languages,
		Extensions: c.Extensions,
		Labels:     c.LanguageLabels,
		Classifier: manifest.Classifier{
			Marker: c.Class.Marker,
			Match:  c.Class.Match,
			Other:  c.Class.Other,
		},
		URLBase: urlBase,
	}
}

// Targets returns the outputs with paths resolved against the root.
func (c *Config) Targets() []output.Target {
	targets := make([]output.Target, len(c.Outputs))
	for i, o := range c.Outputs {
		path := o.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Root, path)
		}
		targets[i] = output.Target{
			Format: o.Format,
			Path:   path,
			Global: o.Global,
		}
	}
	return targets
}

func (c *Config) validate() error {
	if c.Root == "" {
		return keyEmptyError("root")
	}
	if err := checkList("categories", c.Categories); err != nil {
		return err
	}
	if err := checkList("languages", c.Languages); err != nil {
		return err
	}
	for i, ext := range c.Extensions {
		c.Extensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	if err := checkList("extensions", c.Extensions); err != nil {
		return err
	}
	if c.Class == nil {
		return keyEmptyError("class")
	}
	if err := c.Class.validate(); err != nil {
		return err
	}
	if len(c.Outputs) == 0 {
		return keyEmptyError("outputs")
	}
	for _, o := range c.Outputs {
		if err := o.validate(); err != nil {
			return err
		}
	}
	return nil
}

type Class struct {
	Marker string `yaml:"marker"`
	Match  string `yaml:"match"`
	Other  string `yaml:"other"`
}

func (c *Class) validate() error {
	if c.Marker == "" {
		return keyEmptyError("class.marker")
	}
	if c.Match == "" {
		return keyEmptyError("class.match")
	}
	if c.Other == "" {
		return keyEmptyError("class.other")
	}
	if c.Match == c.Other {
		return fmt.Errorf("class.match and class.other must differ")
	}
	return nil
}

// Output is one file to write. Format defaults to json.
type Output struct {
	Format output.Format `yaml:"format"`
	Path   string        `yaml:"path"`
	Global string        `yaml:"global"`
}

func (o *Output) validate() error {
	if o.Path == "" {
		return keyEmptyError("outputs.path")
	}
	if o.Format == output.JS && o.Global == "" {
		return keyEmptyError("outputs.global")
	}
	return nil
}

func checkList(key string, values []string) error {
	if len(values) == 0 {
		return keyEmptyError(key)
	}
	for i, v := range values {
		if v == "" {
			return keyEmptyError(key + " entry")
		}
		if slices.Contains(values[:i], v) {
			return fmt.Errorf("key '%s' contains '%s' more than once", key, v)
		}
	}
	return nil
}

func keyEmptyError(key string) error {
	return fmt.Errorf("key '%s' is missing or value is empty", key)
}
