package config

import (
	_ "embed"
	"strings"
)

//go:embed default.yaml
var defaultYaml string

// Example returns the compiled-in configuration.
func Example() string {
	return strings.TrimSuffix(defaultYaml, "\n")
}

// Default parses the compiled-in configuration.
func Default() (*Config, error) {
	return Parse(strings.NewReader(defaultYaml))
}
