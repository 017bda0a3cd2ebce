package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultTimeoutSeconds = 30
	DefaultUserAgent      = "fgbscope"
)

// findConfigFile picks the config file to use.
// Priority: explicit path > fgbscope.yaml > fgbscope.yml in the cwd.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"fgbscope.yaml", "fgbscope.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"verbose":              false,
		"watch":                true,
		"http.timeout_seconds": DefaultTimeoutSeconds,
		"http.user_agent":      DefaultUserAgent,
		"map.rows":             0,
		"map.cols":             0,
		"theme.accent":         "",
		"theme.highlight":      "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, when present.
	fileUsed := findConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. Environment variables. A double underscore nests:
	// FGBSCOPE_HTTP__TIMEOUT_SECONDS -> http.timeout_seconds.
	if err := k.Load(env.Provider("FGBSCOPE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "FGBSCOPE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			switch f.Name {
			case "timeout":
				return "http.timeout_seconds", posflag.FlagVal(flags, f)
			case "user-agent":
				return "http.user_agent", posflag.FlagVal(flags, f)
			case "map-rows":
				return "map.rows", posflag.FlagVal(flags, f)
			case "map-cols":
				return "map.cols", posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = fileUsed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
