// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first existing config
//              file and loads it.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	liberr "github.com/Wosser1sProductions/utils/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory and the XDG config
// directory of app for <app>.toml / <app>.yaml, with overrides read from
// envPrefix. Finding nothing is not an error.
func DefaultDiscoveryOptions(app, envPrefix string) DiscoveryOptions {
	xdg.Reload()
	paths := []string{".", filepath.Join(xdg.ConfigHome, app)}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  envPrefix,
		Required:   false,
	}
}

// Discover loads the first configuration file found in options.Paths
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, found := findFirst(options)
	if found {
		config, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if err != nil {
			return nil, liberr.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searched := candidates(options)
		return nil, liberr.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
			WithCode(liberr.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searched)
	}

	return New(options.EnvPrefix), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if path, found := findFirst(options); found {
		return path, nil
	}
	return "", liberr.New("no configuration file found").
		WithCode(liberr.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates(options))
}

func findFirst(options DiscoveryOptions) (string, bool) {
	for _, path := range candidates(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func candidates(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
