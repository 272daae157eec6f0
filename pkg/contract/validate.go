/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package contract

import (
	"fmt"
	"strconv"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/hostk8s/hostk8s/pkg/errors"
)

// validAccessModes are the PersistentVolume access modes Kubernetes knows.
var validAccessModes = map[string]bool{
	string(corev1.ReadWriteOnce):    true,
	string(corev1.ReadOnlyMany):     true,
	string(corev1.ReadWriteMany):    true,
	string(corev1.ReadWriteOncePod): true,
}

// ValidateStorage checks the structural invariants of a storage contract
// and applies defaults to optional directory fields. Validation is
// fail-fast: the first violation is returned as a CONTRACT_INVALID error
// with a field-level message, and no mutation has been attempted.
func ValidateStorage(c *StorageContract, stack string) error {
	if c.APIVersion != APIVersion {
		return invalid(fmt.Sprintf("storage contract must have apiVersion: %s, got %q", APIVersion, c.APIVersion))
	}
	if c.Kind != StorageKind {
		return invalid(fmt.Sprintf("storage contract must have kind: %s, got %q", StorageKind, c.Kind))
	}
	if c.Metadata.Name != stack {
		return invalid(fmt.Sprintf("storage contract metadata.name must match stack name %q, got %q", stack, c.Metadata.Name))
	}
	if len(c.Spec.Directories) == 0 {
		return invalid("storage contract must define at least one directory")
	}

	seen := make(map[string]bool, len(c.Spec.Directories))
	for i := range c.Spec.Directories {
		if err := validateDirectory(&c.Spec.Directories[i], i, seen); err != nil {
			return err
		}
		seen[c.Spec.Directories[i].Name] = true
	}

	return nil
}

func validateDirectory(d *DirectorySpec, index int, seen map[string]bool) error {
	if d.Name == "" {
		return invalidDir(index, "missing required field 'name'")
	}
	if d.Path == "" {
		return invalidDir(index, "missing required field 'path'")
	}
	if d.Size == "" {
		return invalidDir(index, "missing required field 'size'")
	}
	if len(d.AccessModes) == 0 {
		return invalidDir(index, "missing required field 'accessModes'")
	}
	if d.StorageClass == "" {
		return invalidDir(index, "missing required field 'storageClass'")
	}

	if d.Owner == "" {
		d.Owner = DefaultOwner
	}
	if d.Permissions == "" {
		d.Permissions = DefaultPermissions
	}

	if seen[d.Name] {
		return invalidDir(index, fmt.Sprintf("duplicate name %q", d.Name))
	}

	if !strings.HasPrefix(d.Path, PathPrefix) {
		return invalidDir(index, fmt.Sprintf("path must start with %q, got %q", PathPrefix, d.Path))
	}

	if _, err := resource.ParseQuantity(d.Size); err != nil {
		return invalidDir(index, fmt.Sprintf("size must be a Kubernetes quantity, got %q", d.Size))
	}

	for _, mode := range d.AccessModes {
		if !validAccessModes[mode] {
			return invalidDir(index, fmt.Sprintf("unknown access mode %q", mode))
		}
	}

	if _, _, err := ParseOwner(d.Owner); err != nil {
		return invalidDir(index, fmt.Sprintf("owner must be numeric 'UID:GID', got %q", d.Owner))
	}

	if !validPermissions(d.Permissions) {
		return invalidDir(index, fmt.Sprintf("permissions must be 3-digit octal, got %q", d.Permissions))
	}

	return nil
}

// ParseOwner splits an "UID:GID" string into its numeric parts.
func ParseOwner(owner string) (uid, gid int, err error) {
	u, g, ok := strings.Cut(owner, ":")
	if !ok {
		return 0, 0, fmt.Errorf("owner %q is not in 'UID:GID' format", owner)
	}
	if uid, err = strconv.Atoi(u); err != nil {
		return 0, 0, fmt.Errorf("owner uid %q is not numeric", u)
	}
	if gid, err = strconv.Atoi(g); err != nil {
		return 0, 0, fmt.Errorf("owner gid %q is not numeric", g)
	}
	return uid, gid, nil
}

func validPermissions(p string) bool {
	if len(p) != 3 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '7' {
			return false
		}
	}
	return true
}

// ValidateSecrets checks the structural invariants of a secrets contract.
// Each data entry must resolve to exactly one value-producing rule: a
// static value, or a known generate strategy. Value wins when both are
// set. Fail-fast like ValidateStorage.
func ValidateSecrets(c *SecretContract) error {
	for i := range c.Spec.Secrets {
		if err := validateSecret(&c.Spec.Secrets[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateSecret(s *SecretSpec, index int) error {
	if s.Name == "" {
		return invalid(fmt.Sprintf("secret %d: missing required field 'name'", index))
	}
	if s.Namespace == "" {
		return invalid(fmt.Sprintf("secret %d (%s): missing required field 'namespace'", index, s.Name))
	}
	if len(s.Data) == 0 {
		return invalid(fmt.Sprintf("secret %d (%s): must define at least one data entry", index, s.Name))
	}

	for j, entry := range s.Data {
		if entry.Key == "" {
			return invalid(fmt.Sprintf("secret %q data %d: missing required field 'key'", s.Name, j))
		}
		if entry.Value == "" && entry.Generate == "" {
			return invalid(fmt.Sprintf("secret %q key %q: must set either 'value' or 'generate'", s.Name, entry.Key))
		}
		if entry.Generate != "" && !entry.Generate.IsValid() {
			return invalid(fmt.Sprintf("secret %q key %q: unknown generate type %q", s.Name, entry.Key, entry.Generate))
		}
		if entry.Length < 0 {
			return invalid(fmt.Sprintf("secret %q key %q: length must be positive, got %d", s.Name, entry.Key, entry.Length))
		}
	}

	return nil
}

func invalid(msg string) error {
	return errors.New(errors.ErrCodeContractInvalid, msg)
}

func invalidDir(index int, msg string) error {
	return errors.NewWithContext(
		errors.ErrCodeContractInvalid,
		fmt.Sprintf("directory %d: %s", index, msg),
		map[string]any{"directory": index},
	)
}
