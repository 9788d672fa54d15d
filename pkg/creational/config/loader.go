package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// decoders maps file extensions to their unmarshal functions. Keys are
// lowercase and include the leading dot.
var decoders = map[string]func([]byte, any) error{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": json.Unmarshal,
}

// SupportedExtensions returns the file extensions FromFile accepts, in
// unspecified order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	return exts
}

// FromFile loads configuration from a file, picking the decoder by
// extension. The extension is checked before the file is read, so an
// unsupported format fails without touching the filesystem.
func FromFile(path string) (Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return decodeInto(data, decode, strings.TrimPrefix(ext, "."))
}

// FromYAML parses YAML into a Config.
func FromYAML(data []byte) (Config, error) {
	return decodeInto(data, yaml.Unmarshal, "yaml")
}

// FromJSON parses JSON into a Config.
func FromJSON(data []byte) (Config, error) {
	return decodeInto(data, json.Unmarshal, "json")
}

func decodeInto(data []byte, decode func([]byte, any) error, format string) (Config, error) {
	var m map[string]any
	if err := decode(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", format, err)
	}
	return New(m), nil
}
