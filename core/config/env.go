// File: env.go
// Title: Dotenv Loading
// Description: Loads KEY=value files into the process environment so they
//              act as environment overrides.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	liberr "github.com/Wosser1sProductions/utils/core/error"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// LoadEnvFile sets every variable of the dotenv file at path that is not
// already set. A missing file is only an error when required is true.
// Returns the number of variables read from the file.
func LoadEnvFile(path string, required bool) (int, error) {
	if path == "" {
		return 0, liberr.New("env file path is required").
			WithCode(liberr.CodeValidationFailed).
			WithOperation("config.LoadEnvFile")
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !required {
				return 0, nil
			}
			return 0, liberr.Wrap(err, "env file not found").
				WithCode(liberr.CodeNotFound).
				WithOperation("config.LoadEnvFile").
				WithDetail("filePath", path)
		}
		return 0, liberr.Wrap(err, "failed to parse env file").
			WithCode(liberr.CodeParseError).
			WithOperation("config.LoadEnvFile").
			WithDetail("filePath", path)
	}

	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return 0, liberr.Wrap(err, "failed to set environment variable").
				WithCode(liberr.CodeConfigError).
				WithOperation("config.LoadEnvFile").
				WithDetail("key", key)
		}
	}
	return len(vars), nil
}
