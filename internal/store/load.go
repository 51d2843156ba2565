package store

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/profilemd/pkg/models"
)

// Load reads a seed profile document (toml, yaml or json, by extension).
// Keys missing from the document keep their models.Default() values;
// lists present in the document replace the defaults entirely.
func Load(path string) (models.Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return models.Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	return decode(v)
}

// Decode reads a seed profile from r. format is "toml", "yaml" or "json".
func Decode(r io.Reader, format string) (models.Profile, error) {
	v := viper.New()
	v.SetConfigType(strings.TrimPrefix(strings.ToLower(format), "."))
	if err := v.ReadConfig(r); err != nil {
		return models.Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return decode(v)
}

// DecodeBytes is Decode for an in-memory document; the format is taken
// from name's extension.
func DecodeBytes(name string, data []byte) (models.Profile, error) {
	return Decode(bytes.NewReader(data), filepath.Ext(name))
}

func decode(v *viper.Viper) (models.Profile, error) {
	p := models.Default()
	// mapstructure reuses existing slice elements; clear the lists the
	// document provides so shorter lists don't keep default tails.
	if v.IsSet("projects") {
		p.Projects = nil
	}
	if v.IsSet("skills.languages") {
		p.Skills.Languages = nil
	}
	if v.IsSet("skills.frameworks") {
		p.Skills.Frameworks = nil
	}
	if v.IsSet("skills.tools") {
		p.Skills.Tools = nil
	}
	if err := v.Unmarshal(&p); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return Normalize(p), nil
}
