// Package config loads the site configuration file given on the command
// line. The configuration is read once at startup and shared read-only for
// the process lifetime; there is no reload path.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Site is the process-wide configuration.
type Site struct {
	Port            string `yaml:"port"`
	FilePath        string `yaml:"file_path"`
	SiteTitle       string `yaml:"site_title"`
	SiteDescription string `yaml:"site_description"`
	SiteLink        string `yaml:"site_link"`
	AdminUsername   string `yaml:"admin_username"`
	AdminPassword   string `yaml:"admin_password"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &s, nil
}

// Addr normalizes the configured port into a listen address. A bare port
// number becomes ":port"; anything already containing a colon is used as-is.
func (s *Site) Addr() string {
	if strings.Contains(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}
