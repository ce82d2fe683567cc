// Package config loads config.yaml: SMTP settings for the email sender
// and the title/HTML substring filters applied during enumeration.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config mirrors config.yaml's top-level keys.
type Config struct {
	EmailHost     string   `yaml:"email_host"`
	EmailPort     int      `yaml:"email_port"`
	EmailUsername string   `yaml:"email_username"`
	EmailPassword string   `yaml:"email_password"`
	EmailSender   string   `yaml:"email_sender"`
	EmailReceiver string   `yaml:"email_receiver"`
	TitleFilters  []string `yaml:"title_filters"`
	HTMLFilters   []string `yaml:"html_filters"`
}

// Load reads and parses path. A missing config.yaml is not an error at
// load time: it yields an empty Config, under which no title or HTML
// filter matches and EmailConfigured reports false.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MatchesTitleFilter reports whether title contains any configured
// title_filters substring.
func (c *Config) MatchesTitleFilter(title string) bool {
	return containsAny(title, c.TitleFilters)
}

// MatchesHTMLFilter reports whether body contains any configured
// html_filters substring.
func (c *Config) MatchesHTMLFilter(body string) bool {
	return containsAny(body, c.HTMLFilters)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n == "" {
			continue
		}
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// EmailConfigured reports whether enough SMTP settings are present to
// attempt a send.
func (c *Config) EmailConfigured() bool {
	return c.EmailHost != "" && c.EmailSender != "" && c.EmailReceiver != ""
}
