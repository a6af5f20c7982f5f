// Package nodecfg provides configuration loading for marshal-kit consumers
// using koanf.
//
// A loaded [Config] implements [marshal.NameSource], so it can be handed
// directly to the scoped operations as the owner of the node name.
package nodecfg

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/johnrutherford/marshal-kit/internal/errors"
	"github.com/johnrutherford/marshal-kit/nodename"
)

// EnvPrefix is the prefix for environment variable overrides.
// MARSHALKIT_NODE_NAME overrides node.name, and so on.
const EnvPrefix = "MARSHALKIT_"

// DefaultClientHeadroom is the default headroom, in bytes, reserved by
// client marshalling for the message header.
const DefaultClientHeadroom = 8

// Config holds the settings consumed by marshal-kit integrations.
type Config struct {
	Node   NodeConfig   `koanf:"node"`
	Codec  CodecConfig  `koanf:"codec"`
	Client ClientConfig `koanf:"client"`
}

// NodeConfig identifies the local node.
type NodeConfig struct {
	// Name is the local node name. An empty name is valid; whether the
	// name counts as set is tracked separately (see Config.NodeName).
	Name string `koanf:"name"`

	// named records whether node.name was present in any source.
	named bool
}

// CodecConfig selects the codec used for node-to-node payloads.
type CodecConfig struct {
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the client-facing marshalling path.
type ClientConfig struct {
	Headroom int `koanf:"headroom"`
}

// NodeName returns the configured node name. Config implements
// [marshal.NameSource] through this method: a config with no node.name in
// any source yields the unset name.
func (c *Config) NodeName() nodename.Name {
	if !c.Node.named {
		return nodename.Name{}
	}
	return nodename.New(c.Node.Name)
}

func defaults() map[string]any {
	return map[string]any{
		"codec.format":    "json",
		"client.headroom": DefaultClientHeadroom,
	}
}

// Load loads configuration with the following precedence (highest to
// lowest):
//  1. Environment variables (MARSHALKIT_ prefix)
//  2. YAML config file at path, when path is non-empty and the file exists
//  3. Default values
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, "nodecfg: loading defaults")
	}

	if path != "" {
		err = loadFileIfExists(k, path)
		if err != nil {
			return nil, errors.Wrapf(err, "nodecfg: loading config file %q", path)
		}
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envTransform), nil)
	if err != nil {
		return nil, errors.Wrap(err, "nodecfg: loading env vars")
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "nodecfg: unmarshalling config")
	}

	cfg.Node.named = k.Exists("node.name")

	return &cfg, nil
}

// envTransform maps MARSHALKIT_NODE_NAME to node.name.
func envTransform(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
		"_",
		".",
	)
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
