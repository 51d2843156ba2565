package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// An explicit SetConfigFile upstream wins over these search paths.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "profilemd"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "profilemd"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// PROFILEMD_* (highest among these sources)
	v.SetEnvPrefix("profilemd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("language")) == "" {
		v.Set("language", "en")
	}

	// Allow comma-separated env override for server.cors_origins
	if len(v.GetStringSlice("server.cors_origins")) == 1 {
		if s := v.GetStringSlice("server.cors_origins")[0]; strings.Contains(s, ",") {
			v.Set("server.cors_origins", splitCSV(s))
		}
	}
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "profilemd", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "language", Default: "en", Comment: "Label language for new profiles: en or pt-br"},
		{Key: "username", Default: "", Comment: "GitHub username prefilled in new profiles"},

		{Key: "preview.style", Default: "dracula", Comment: "Glamour style for the pretty preview (dark, light, dracula, notty, ...)"},
		{Key: "preview.word_wrap", Default: 80, Comment: "Wrap width of the pretty preview"},
		{Key: "output.format", Default: "markdown", Comment: "Default render output: markdown, pretty or json"},

		{Key: "server.addr", Default: "127.0.0.1:8080", Comment: "Listen address of `profilemd serve`"},
		{Key: "server.cors_origins", Default: []string{"*"}, Comment: "Origins allowed to call the render API from a browser"},

		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn, error"},
		{Key: "log.development", Default: false, Comment: "Human-readable console logs instead of JSON"},

		{Key: "clipboard.enabled", Default: true, Comment: "Allow the form to copy markdown to the system clipboard"},
		{Key: "editor.command", Default: "", Comment: "Editor used for bio editing; falls back to $VISUAL, $EDITOR, nvim, vim, vi"},
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
