/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package contract

import "fmt"

const (
	// APIVersion is the required apiVersion of every contract.
	APIVersion = "hostk8s.io/v1"

	// StorageKind is the required kind of a storage contract.
	StorageKind = "StorageContract"

	// StorageFile is the storage contract file name inside a stack directory.
	StorageFile = "hostk8s.storage.yaml"

	// SecretsFile is the secrets contract file name inside a stack directory.
	SecretsFile = "hostk8s.secrets.yaml"

	// PathPrefix is the host mount prefix every storage directory must
	// live under.
	PathPrefix = "/mnt/pv/"
)

// Defaults applied to optional fields before validation.
const (
	DefaultOwner          = "1000:1000"
	DefaultPermissions    = "755"
	DefaultGenerateLength = 32
)

// Metadata identifies a contract. Name must match the stack the contract
// belongs to.
type Metadata struct {
	Name string `yaml:"name"`
}

// StorageContract declares the persistent storage a stack needs.
type StorageContract struct {
	APIVersion string      `yaml:"apiVersion"`
	Kind       string      `yaml:"kind"`
	Metadata   Metadata    `yaml:"metadata"`
	Spec       StorageSpec `yaml:"spec"`
}

// StorageSpec holds the ordered directory declarations.
type StorageSpec struct {
	Directories []DirectorySpec `yaml:"directories"`
}

// DirectorySpec describes one hostPath-backed directory and the
// PersistentVolume derived from it.
type DirectorySpec struct {
	// Name is unique within the contract and part of the derived PV name.
	Name string `yaml:"name"`

	// Path is the host mount location, always under PathPrefix.
	Path string `yaml:"path"`

	// Size is a Kubernetes quantity, e.g. "5Gi".
	Size string `yaml:"size"`

	// AccessModes are the PV access modes, e.g. ReadWriteOnce.
	AccessModes []string `yaml:"accessModes"`

	// StorageClass names the class the PV binds under.
	StorageClass string `yaml:"storageClass"`

	// Owner is "UID:GID" for the host directory, default DefaultOwner.
	Owner string `yaml:"owner,omitempty"`

	// Permissions is a 3-digit octal mode string, default DefaultPermissions.
	Permissions string `yaml:"permissions,omitempty"`
}

// SecretContract declares the secret values a stack needs.
type SecretContract struct {
	APIVersion string      `yaml:"apiVersion,omitempty"`
	Kind       string      `yaml:"kind,omitempty"`
	Metadata   Metadata    `yaml:"metadata,omitempty"`
	Spec       SecretsSpec `yaml:"spec"`
}

// SecretsSpec holds the ordered secret declarations.
type SecretsSpec struct {
	Secrets []SecretSpec `yaml:"secrets"`
}

// SecretSpec describes one Kubernetes Secret sourced from Vault.
type SecretSpec struct {
	Name      string      `yaml:"name"`
	Namespace string      `yaml:"namespace"`
	Data      []DataEntry `yaml:"data"`
}

// VaultPath returns the KV path the secret's values are stored under.
func (s *SecretSpec) VaultPath(stack string) string {
	return fmt.Sprintf("%s/%s/%s", stack, s.Namespace, s.Name)
}

// DataEntry resolves to one key/value pair in the secret: either a static
// value or a generated one. Value takes precedence when both are set.
type DataEntry struct {
	Key      string       `yaml:"key"`
	Value    string       `yaml:"value,omitempty"`
	Generate GenerateType `yaml:"generate,omitempty"`

	// Length is the generated value length, default DefaultGenerateLength.
	// Ignored by the uuid strategy.
	Length int `yaml:"length,omitempty"`
}

// GenerateType enumerates the value generation strategies.
type GenerateType string

const (
	// GeneratePassword yields letters, digits, and symbols.
	GeneratePassword GenerateType = "password"

	// GenerateToken yields letters and digits only.
	GenerateToken GenerateType = "token"

	// GenerateHex yields hexadecimal digits.
	GenerateHex GenerateType = "hex"

	// GenerateUUID yields a lowercase UUIDv4.
	GenerateUUID GenerateType = "uuid"
)

// IsValid reports whether the strategy is one of the known generators.
func (g GenerateType) IsValid() bool {
	switch g {
	case GeneratePassword, GenerateToken, GenerateHex, GenerateUUID:
		return true
	default:
		return false
	}
}
