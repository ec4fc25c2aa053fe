package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/pseudostates"
)

const defaultConfigFile = ".pseudostates.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Flag names match config keys, so
	// defaults of flags that were not set only fill keys nothing else set.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return setupLogger(
		getBoolWithFallback("verbose", false),
		getBoolWithFallback("quiet", false),
	)
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (PSEUDOSTATES_* prefix)
	if err := k.Load(env.Provider("PSEUDOSTATES_", ".", func(s string) string {
		// PSEUDOSTATES_OUTPUT_DIR -> output-dir
		// PSEUDOSTATES_SHADOW -> shadow
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PSEUDOSTATES_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() pseudostates.Config {
	config := pseudostates.Config{
		SourceDir:              getStringWithFallback("source", "web/styles"),
		OutputDir:              getStringWithFallback("output-dir", ""),
		Includes:               getStringsWithFallback("include", []string{"**/*.css"}),
		Excludes:               getStringsWithFallback("exclude", nil),
		PseudoStates:           getStringsWithFallback("states", nil),
		ExcludedPseudoElements: getStringsWithFallback("excluded-elements", nil),
		ClassPrefix:            getStringWithFallback("class-prefix", "pseudo-"),
		MaxRules:               getIntWithFallback("max-rules", 1000),
		ShadowDOM:              getBoolWithFallback("shadow", false),
		ShadowHost:             getStringWithFallback("shadow-host", ""),
		RespectGitignore:       getBoolWithFallback("gitignore", true),
		Verbose:                getBoolWithFallback("verbose", false),
		Logger:                 logger,
	}

	return config
}

// buildReportConfig constructs the check output settings from koanf state.
func buildReportConfig() pseudostates.ReportConfig {
	return pseudostates.ReportConfig{
		PrintIssuedLines: getBoolWithFallback("print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", true),
		UseColors:        getBoolWithFallback("color", false),
		ShowReplacements: getBoolWithFallback("show-replacements", false),
	}
}

// getStringWithFallback returns the value for key, or the default when unset or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback returns the list for key, or the default when unset or empty.
// Plain strings, as set through environment variables, are split on commas.
func getStringsWithFallback(key string, defaultVal []string) []string {
	var v []string
	if s, ok := k.Get(key).(string); ok {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				v = append(v, part)
			}
		}
	} else {
		v = k.Strings(key)
	}
	if len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the value for key, or the default when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithFallback returns the value for key, or the default when unset.
func getIntWithFallback(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
