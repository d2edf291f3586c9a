// Package config loads thinktank settings from .thinktank.yaml and THINKTANK_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"tableflip.dev/thinktank/pkg/lifecycle"
	"tableflip.dev/thinktank/pkg/organizer"
	"tableflip.dev/thinktank/pkg/pinned"
	"tableflip.dev/thinktank/pkg/timeutil"
)

const (
	KeyRetention = "retention"
	KeyPinLimit  = "pin_limit"
	KeyLocale    = "locale"

	// PathEnv adds a directory to the config search path.
	PathEnv = "THINKTANK_CONFIG_PATH"
)

type Config interface {
	Retention() lifecycle.Policy
	PinLimit() int
	Language() language.Tag
	// Options turns the settings into organizer options.
	Options() []organizer.Option
}

// Load reads the config file, if any, and the environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName(".thinktank") // .yaml is implicit
	v.SetEnvPrefix("THINKTANK")
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	return FromViper(v)
}

// FromViper builds a Config from an already configured viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	v.SetDefault(KeyRetention, timeutil.DefaultRetention)
	v.SetDefault(KeyPinLimit, pinned.DefaultLimit)
	v.SetDefault(KeyLocale, "en")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	days, _, err := timeutil.ParseDays(v.GetString(KeyRetention))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyRetention, err)
	}
	if days < 0 {
		return nil, fmt.Errorf("config: %s must not be negative, got %d", KeyRetention, days)
	}
	limit := v.GetInt(KeyPinLimit)
	if limit < 0 {
		return nil, fmt.Errorf("config: %s must not be negative, got %d", KeyPinLimit, limit)
	}
	tag, err := language.Parse(strings.TrimSpace(v.GetString(KeyLocale)))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyLocale, err)
	}

	return &fileConfig{
		RetentionDays: days,
		Pins:          limit,
		Locale:        tag,
	}, nil
}

type fileConfig struct {
	RetentionDays int          `json:"retentionDays"`
	Pins          int          `json:"pinLimit"`
	Locale        language.Tag `json:"locale"`
}

func (f *fileConfig) Retention() lifecycle.Policy {
	return lifecycle.Policy{RetentionDays: f.RetentionDays}
}

func (f *fileConfig) PinLimit() int {
	return f.Pins
}

func (f *fileConfig) Language() language.Tag {
	return f.Locale
}

func (f *fileConfig) Options() []organizer.Option {
	return []organizer.Option{
		organizer.WithPolicy(f.Retention()),
		organizer.WithPinLimit(f.Pins),
		organizer.WithLanguage(f.Locale),
	}
}
