// Package config loads the optional strutils configuration file.
//
// Package: config
// Title: Configuration Management for utils
// Description: TOML and YAML files are read into a tree of maps addressed by
//              dot-separated keys. Every key can be overridden by an
//              environment variable named after it (split.delimiter with
//              prefix UTILS is UTILS_SPLIT_DELIMITER).
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions("strutils", "UTILS"))
//	if err != nil {
//		return err
//	}
//	delim := cfg.GetString("split.delimiter", ",")
//	jobs := cfg.GetInt("base64.jobs", 4)
//
// Variables from a dotenv file count as environment overrides:
//
//	_, err := config.LoadEnvFile(config.DefaultEnvFile, false)
//
// A loaded file can be watched for changes:
//
//	go cfg.Watch(ctx, func(old, cur *config.Config) {
//		logger.Info("config reloaded")
//	}, nil)
package config
