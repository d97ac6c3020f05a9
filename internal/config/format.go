package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Marshal.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatTOML, FormatYAML, FormatJSON}
}

// Marshal renders the global configuration in the given format for display.
func (c *GlobalConfig) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatTOML:
		return encodeTOML(c)
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}
