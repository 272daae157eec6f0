/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// EnvFile is the conventional environment file loaded at startup.
const EnvFile = ".env"

// LoadEnvFile reads KEY=VALUE pairs from the given file and exports each
// into the process environment unless the variable is already set, so
// values exported by make or the shell always win.
//
// Lines that are empty, comments, or missing '=' are skipped. Inline
// comments and surrounding quotes are stripped from values.
//
// Returns the parsed pairs. A missing file is not an error.
func LoadEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to open env file %s: %w", path, err)
	}
	defer f.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)

		// Strip inline comments before quotes so trailing "# ..." never
		// leaks into the value.
		if i := strings.Index(value, "#"); i >= 0 {
			value = value[:i]
		}
		value = strings.Trim(strings.TrimSpace(value), `'"`)

		vars[key] = value
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return nil, fmt.Errorf("failed to set %s: %w", key, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	return vars, nil
}

// LoadEnvironment loads the conventional .env file from the working
// directory. Call before flag parsing so environment-sourced flags see
// the loaded values.
func LoadEnvironment() error {
	_, err := LoadEnvFile(EnvFile)
	return err
}
