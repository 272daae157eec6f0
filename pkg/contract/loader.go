/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hostk8s/hostk8s/pkg/errors"
)

// StoragePath returns the storage contract location for a stack.
func StoragePath(stacksDir, stack string) string {
	return filepath.Join(stacksDir, stack, StorageFile)
}

// SecretsPath returns the secrets contract location for a stack.
func SecretsPath(stacksDir, stack string) string {
	return filepath.Join(stacksDir, stack, SecretsFile)
}

// LoadStorage reads and decodes the storage contract for a stack.
//
// A missing file returns a CONTRACT_NOT_FOUND error the caller treats as
// "nothing to do". Malformed YAML and unknown fields are rejected with an
// error naming the file.
func LoadStorage(stacksDir, stack string) (*StorageContract, error) {
	var c StorageContract
	if err := decodeFile(StoragePath(stacksDir, stack), stack, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadSecrets reads and decodes the secrets contract for a stack, with the
// same not-found and strictness semantics as LoadStorage.
func LoadSecrets(stacksDir, stack string) (*SecretContract, error) {
	var c SecretContract
	if err := decodeFile(SecretsPath(stacksDir, stack), stack, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeFile(path, stack string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewWithContext(
				errors.ErrCodeContractNotFound,
				fmt.Sprintf("no contract found for stack %q", stack),
				map[string]any{"stack": stack, "path": path},
			)
		}
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to open contract %s", path), err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	// Unknown fields are contract mistakes, not extensions.
	dec.KnownFields(true)

	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeContractInvalid,
			fmt.Sprintf("failed to parse contract %s", path), err)
	}
	return nil
}
