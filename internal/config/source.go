// internal/config/source.go
//
// Source Resolver: files plus environment overrides, merged into one
// raw settings tree.
//
// Context
// -------
// `Resolve()` builds one Settings view from an ordered list of layers
// (highest precedence last):
//
//  1. Zero or more YAML files, in the order supplied; each subsequent
//     file overrides earlier ones for the same key.
//  2. Environment variables prefixed `GOODDATA_FLIGHT_`, where `__`
//     maps to “.” (e.g., `GOODDATA_FLIGHT_SERVER__LISTEN_PORT →
//     server.listen_port`), overriding every file value.
//
// The result carries raw, uncast values; rule defaults, casting, and
// acceptance conditions are applied later by the rule engine.
//
// Notes
// -----
//   • Every path is checked up front; a missing file or a directory
//     aborts before any parsing so no partial store ever escapes.
//   • Environment values arrive as strings; the rule casts coerce them.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// Settings is the merged, not-yet-validated view of every configuration
// source.  Values keep whatever type the source produced (strings from
// the environment, YAML scalars and mappings from files).
type Settings struct {
	k *koanf.Koanf
}

// Has reports whether a dotted key was supplied by any source.
func (s *Settings) Has(key string) bool { return s.k.Exists(key) }

// Get returns the raw value for a dotted key, or nil when absent.
func (s *Settings) Get(key string) any { return s.k.Get(key) }

// All returns a flat dotted-key → raw-value map, for diagnostics.
func (s *Settings) All() map[string]any { return s.k.All() }

// Resolve layers the given files in order, then the environment, into a
// single raw Settings store.  No validation or casting happens here.
func Resolve(files ...string) (*Settings, error) {
	for _, path := range files {
		fi, err := os.Stat(path)
		switch {
		case err != nil:
			return nil, fmt.Errorf("settings file %s does not exist", path)
		case fi.IsDir():
			return nil, fmt.Errorf("path %s is a directory and not a settings file", path)
		}
	}

	k := koanf.New(".")

	for _, path := range files {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse settings file %s: %w", path, err)
		}
	}

	// Env overrides: GOODDATA_FLIGHT_SERVER__LISTEN_PORT → server.listen_port
	if err := k.Load(env.Provider(EnvPrefix, ".", func(name string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, EnvPrefix), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("environment overlay: %w", err)
	}

	return &Settings{k: k}, nil
}
