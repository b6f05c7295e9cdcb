package quotes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type quoteFile struct {
	Quotes []Quote `toml:"quote" yaml:"quotes"`
}

// LoadFile reads a quote pack. TOML files use [[quote]] tables; YAML
// files (.yaml, .yml) use a top-level "quotes" list.
func LoadFile(path string) ([]Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file quoteFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to decode quotes: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("failed to decode quotes: %w", err)
		}
	}
	for i := range file.Quotes {
		file.Quotes[i].Text = strings.TrimSpace(file.Quotes[i].Text)
		if err := file.Quotes[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: quote %d: %w", path, i+1, err)
		}
		if file.Quotes[i].Name == "" {
			file.Quotes[i].Name = "Untitled"
		}
	}
	return file.Quotes, nil
}

// Load assembles the pool contents from the built-in quotes and an
// optional quote pack. A missing pack is not an error.
func Load(path string, includeBuiltin bool) ([]Quote, error) {
	var out []Quote
	if includeBuiltin {
		out = append(out, Builtin()...)
	}
	if path != "" {
		extra, err := LoadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		out = append(out, extra...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no quotes available (built-in quotes disabled and %q has none)", path)
	}
	return out, nil
}
