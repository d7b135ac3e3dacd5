// Package render serialises a build-tool configuration in the formats the
// build tool can load.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/pendergraft/seiconf/internal/hardhat"
)

// Format is an output format
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	JS   Format = "js"
	TS   Format = "ts"
)

// ErrUnknownFormat is returned for an unsupported format name
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported formats
func Formats() []Format {
	return []Format{JSON, YAML, TOML, JS, TS}
}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "js", "cjs", "javascript":
		return JS, nil
	case "ts", "typescript":
		return TS, nil
	}
	return "", fmt.Errorf("%w: %q (supported: json, yaml, toml, js, ts)", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	case ".toml":
		return TOML, true
	case ".js", ".cjs":
		return JS, true
	case ".ts":
		return TS, true
	}
	return "", false
}

// Render writes cfg to w in the given format
func Render(w io.Writer, cfg *hardhat.UserConfig, f Format) error {
	switch f {
	case JSON:
		data, err := marshalJSON(cfg)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
		return nil
	case JS, TS:
		out, err := renderModule(cfg, f)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteFile renders cfg to path with owner-only permissions.
// The output carries signing and explorer credentials.
func WriteFile(path string, cfg *hardhat.UserConfig, f Format) error {
	var buf bytes.Buffer
	if err := Render(&buf, cfg, f); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("restricting config permissions: %w", err)
	}
	return nil
}

func marshalJSON(cfg *hardhat.UserConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return data, nil
}
