/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hostk8s/hostk8s/pkg/contract"
)

const manifestFile = "external-secrets.yaml"

// manifestHeader opens the generated file. The manifest carries only Vault
// path references, never values, which is what makes it safe to commit.
const manifestHeader = `# Generated ExternalSecret manifests from hostk8s.secrets.yaml
# This file is auto-generated by hostk8s secrets add - safe to commit to Git
# Contains no sensitive data - only Vault path references
# To regenerate: hostk8s secrets add <stack>
`

// ManifestPath returns the generated ExternalSecret manifest location for a
// stack.
func ManifestPath(stacksDir, stack string) string {
	return filepath.Join(stacksDir, stack, "manifests", manifestFile)
}

// ExternalSecret is the external-secrets.io CRD document the processor
// emits, one per contract secret.
type ExternalSecret struct {
	APIVersion string             `yaml:"apiVersion"`
	Kind       string             `yaml:"kind"`
	Metadata   ExternalSecretMeta `yaml:"metadata"`
	Spec       ExternalSecretSpec `yaml:"spec"`
}

type ExternalSecretMeta struct {
	Name      string            `yaml:"name"`
	Namespace string            `yaml:"namespace"`
	Labels    map[string]string `yaml:"labels"`
}

type ExternalSecretSpec struct {
	RefreshInterval string         `yaml:"refreshInterval"`
	SecretStoreRef  SecretStoreRef `yaml:"secretStoreRef"`
	Target          SecretTarget   `yaml:"target"`
	Data            []SecretData   `yaml:"data"`
}

type SecretStoreRef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type SecretTarget struct {
	Name           string `yaml:"name"`
	CreationPolicy string `yaml:"creationPolicy"`
}

type SecretData struct {
	SecretKey string    `yaml:"secretKey"`
	RemoteRef RemoteRef `yaml:"remoteRef"`
}

type RemoteRef struct {
	Key      string `yaml:"key"`
	Property string `yaml:"property"`
}

// NewExternalSecret derives the ExternalSecret document for one contract
// secret. Every remoteRef points at the stack's Vault path; the external
// secrets operator resolves the values at sync time.
func NewExternalSecret(stack string, s *contract.SecretSpec) *ExternalSecret {
	vaultPath := s.VaultPath(stack)

	data := make([]SecretData, 0, len(s.Data))
	for _, entry := range s.Data {
		data = append(data, SecretData{
			SecretKey: entry.Key,
			RemoteRef: RemoteRef{
				Key:      vaultPath,
				Property: entry.Key,
			},
		})
	}

	return &ExternalSecret{
		APIVersion: "external-secrets.io/v1",
		Kind:       "ExternalSecret",
		Metadata: ExternalSecretMeta{
			Name:      s.Name,
			Namespace: s.Namespace,
			Labels: map[string]string{
				"hostk8s.io/managed":  "true",
				"hostk8s.io/contract": stack,
			},
		},
		Spec: ExternalSecretSpec{
			RefreshInterval: "10s",
			SecretStoreRef: SecretStoreRef{
				Name: "vault-backend",
				Kind: "ClusterSecretStore",
			},
			Target: SecretTarget{
				Name:           s.Name,
				CreationPolicy: "Owner",
			},
			Data: data,
		},
	}
}

// ManifestWriter regenerates the multi-document ExternalSecret manifest
// file: truncate, write the header, then append one document per secret.
type ManifestWriter struct {
	path string
	f    *os.File
}

// NewManifestWriter truncates (or creates) the manifest file and writes the
// header. The manifests directory is created when absent.
func NewManifestWriter(path string) (*ManifestWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create manifests directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest file %s: %w", path, err)
	}

	if _, err := f.WriteString(manifestHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write manifest header: %w", err)
	}

	return &ManifestWriter{path: path, f: f}, nil
}

// Append writes the ExternalSecret document for one secret.
func (w *ManifestWriter) Append(stack string, s *contract.SecretSpec) error {
	doc, err := yaml.Marshal(NewExternalSecret(stack, s))
	if err != nil {
		return fmt.Errorf("failed to marshal ExternalSecret for %q: %w", s.Name, err)
	}

	if _, err := fmt.Fprintf(w.f, "\n---\n# ExternalSecret for %s\n%s", s.Name, doc); err != nil {
		return fmt.Errorf("failed to write ExternalSecret for %q: %w", s.Name, err)
	}
	return nil
}

// Path returns the manifest file location.
func (w *ManifestWriter) Path() string {
	return w.path
}

// Close flushes and closes the manifest file.
func (w *ManifestWriter) Close() error {
	return w.f.Close()
}

// RemoveManifest deletes the generated manifest file. An absent file is not
// an error.
func RemoveManifest(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove manifest file %s: %w", path, err)
	}
	return nil
}
