package output

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

type Format int

const (
	JSON Format = iota
	JS
	M3U
	Unknown
)

var formatNames = [...]string{
	JSON:    "json",
	JS:      "js",
	M3U:     "m3u",
	Unknown: "unknown",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var y string
	err := node.Decode(&y)
	if err != nil {
		return err
	}
	for i := range Unknown {
		if strings.EqualFold(i.String(), y) {
			*f = i
			return nil
		}
	}
	return fmt.Errorf("unknown output format '%s'", y)
}
