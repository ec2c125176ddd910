// Package config provides the TOML settings file and XDG path helpers.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultQuestionCount is the round length when the config does not set one.
const DefaultQuestionCount = 10

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps game-related settings. Fields are pointers so an absent
// key is distinguishable from an explicit zero.
type GameConfig struct {
	Sound     *bool   `toml:"sound"`
	Questions *int    `toml:"questions"`
	Name      *string `toml:"name"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// SoundEnabled returns the configured sound setting, defaulting to on.
func (c FileConfig) SoundEnabled() bool {
	if c.Game.Sound == nil {
		return true
	}
	return *c.Game.Sound
}

// QuestionCount returns the configured round length, clamped to a sane
// minimum.
func (c FileConfig) QuestionCount() int {
	if c.Game.Questions == nil || *c.Game.Questions < 1 {
		return DefaultQuestionCount
	}
	return *c.Game.Questions
}

// PlayerName returns the configured default player name, or empty when the
// name comes from the player document instead.
func (c FileConfig) PlayerName() string {
	if c.Game.Name == nil {
		return ""
	}
	return *c.Game.Name
}
