package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec        string       `koanf:"spec"`
	IncludeTags []string     `koanf:"include-tags"`
	ExcludeTags []string     `koanf:"exclude-tags"`
	StrictIDs   bool         `koanf:"strict-ids"`
	ValidateDoc bool         `koanf:"validate"`
	Output      OutputConfig `koanf:"output"`
	Log         LogConfig    `koanf:"log"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// BindCommonFlags binds the flags shared by every resourcery command.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: resourcery.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.StringSlice("include-tags", nil, "Tags to include (exclusive)")
	flags.StringSlice("exclude-tags", nil, "Tags to exclude")
	flags.Bool("strict-ids", false, "Fail on duplicate operation ids within a tag")
	flags.Bool("validate", false, "Validate the document before grouping")
	flags.StringP("format", "f", "", "Output format: text, json, yaml")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text, json")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("resourcery.yaml"); err == nil {
			configFile = "resourcery.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getStringSlice("include-tags"); len(v) > 0 {
		m["include-tags"] = v
	}
	if v := getStringSlice("exclude-tags"); len(v) > 0 {
		m["exclude-tags"] = v
	}
	if flagChanged("strict-ids") {
		m["strict-ids"] = getBool("strict-ids")
	}
	if flagChanged("validate") {
		m["validate"] = getBool("validate")
	}
	if v := getString("format"); v != "" {
		m["output.format"] = v
	}
	if v := getString("log-level"); v != "" {
		m["log.level"] = v
	}
	if v := getString("log-format"); v != "" {
		m["log.format"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s (valid: text, json, yaml)", c.Output.Format)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Log.Level)
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Log.Format)
	}

	return nil
}

// Allowed reports whether a tag passes the include/exclude filters.
func (c *Config) Allowed(tag string) bool {
	if len(c.IncludeTags) > 0 && !slices.Contains(c.IncludeTags, tag) {
		return false
	}
	return !slices.Contains(c.ExcludeTags, tag)
}
