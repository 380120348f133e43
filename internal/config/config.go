// Package config provides YAML-based configuration for the terminal
// theme and the SSH server. The grid size and tick rate are intentionally
// not configurable; they are fixed constants of the game.
package config

import "time"

// Config is the top-level configuration file structure.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
}

// ThemeConfig selects terminal colors for the game elements.
// Values are lipgloss color strings: ANSI codes ("2", "196") or hex ("#00ff00").
type ThemeConfig struct {
	Snake  string `yaml:"snake"`
	Food   string `yaml:"food"`
	Text   string `yaml:"text"`
	Accent string `yaml:"accent"`
	Dim    string `yaml:"dim"`
}

// ServerConfig holds defaults for the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
